// Package tools exposes the reminder operations as MCP tools. It only
// decodes parameters and wraps results; every invariant lives in the
// reminders package.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/r4sd/apple-reminders-mcp/internal/reminders"
)

// Handler binds the tool definitions to a reminders service.
type Handler struct {
	svc         *reminders.Service
	defaultList string
}

func New(svc *reminders.Service, defaultList string) *Handler {
	return &Handler{svc: svc, defaultList: defaultList}
}

// Register adds every tool to the server. One tool per operation; the
// routing between store backends stays invisible to the caller.
func (h *Handler) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("list-lists",
		mcp.WithDescription("List the names of all reminder lists."),
	), h.handleListLists)

	s.AddTool(mcp.NewTool("get-reminders",
		mcp.WithDescription("Get all reminders in a list as JSON."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithBoolean("includeCompleted", mcp.Description("Include completed reminders.")),
	), h.handleGetReminders)

	s.AddTool(mcp.NewTool("create-reminder",
		mcp.WithDescription("Create a new reminder in a list."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Reminder title.")),
		mcp.WithString("body", mcp.Description("Reminder notes.")),
		mcp.WithString("dueDate", mcp.Description("Due date, format yyyy-MM-dd HH:mm (local time).")),
	), h.handleCreate)

	s.AddTool(mcp.NewTool("complete-reminder",
		mcp.WithDescription("Mark a reminder as completed."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
	), h.handleComplete)

	s.AddTool(mcp.NewTool("delete-reminder",
		mcp.WithDescription("Delete a reminder."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
	), h.handleDelete)

	s.AddTool(mcp.NewTool("update-reminder",
		mcp.WithDescription("Update fields of a reminder. Supplying no fields is reported as nothing-to-do, not an error."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
		mcp.WithString("name", mcp.Description("New title.")),
		mcp.WithString("body", mcp.Description("Replacement notes.")),
		mcp.WithString("appendBody", mcp.Description("Text appended to the notes (concatenates on every call).")),
		mcp.WithString("dueDate", mcp.Description("New due date, format yyyy-MM-dd HH:mm.")),
	), h.handleUpdate)

	s.AddTool(mcp.NewTool("set-priority",
		mcp.WithDescription("Set reminder priority: 0 none, 1-3 high, 4-6 medium, 7-9 low."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
		mcp.WithNumber("priority", mcp.Required(), mcp.Description("Priority value 0-9.")),
	), h.handleSetPriority)

	s.AddTool(mcp.NewTool("set-due-alarm",
		mcp.WithDescription("Set the due date and replace any existing time alarms with one at that date."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Alarm date, format yyyy-MM-dd HH:mm (local time).")),
	), h.handleSetDueAlarm)

	s.AddTool(mcp.NewTool("set-recurrence",
		mcp.WithDescription("Set the recurrence rule, replacing any existing rules."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
		mcp.WithString("frequency", mcp.Required(), mcp.Description("daily, weekly, monthly or yearly.")),
		mcp.WithNumber("interval", mcp.Description("Repeat every N periods, default 1.")),
		mcp.WithString("endDate", mcp.Description("Stop repeating after this date (exclusive with endCount).")),
		mcp.WithNumber("endCount", mcp.Description("Stop after N occurrences (exclusive with endDate).")),
	), h.handleSetRecurrence)

	s.AddTool(mcp.NewTool("get-recurrence",
		mcp.WithDescription("Read a reminder's recurrence rule."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
	), h.handleGetRecurrence)

	s.AddTool(mcp.NewTool("clear-recurrence",
		mcp.WithDescription("Remove all recurrence rules from a reminder."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
	), h.handleClearRecurrence)

	s.AddTool(mcp.NewTool("set-location-alarm",
		mcp.WithDescription("Set a location alarm, replacing any existing location alarms. Time alarms are untouched."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
		mcp.WithString("title", mcp.Description("Location label.")),
		mcp.WithNumber("latitude", mcp.Required()),
		mcp.WithNumber("longitude", mcp.Required()),
		mcp.WithNumber("radius", mcp.Required(), mcp.Description("Geofence radius in meters, > 0.")),
		mcp.WithString("proximity", mcp.Required(), mcp.Description("enter or leave.")),
	), h.handleSetLocationAlarm)

	s.AddTool(mcp.NewTool("get-location",
		mcp.WithDescription("Read a reminder's location alarm."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
	), h.handleGetLocation)

	s.AddTool(mcp.NewTool("clear-location-alarm",
		mcp.WithDescription("Remove location alarms only; time alarms stay."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
	), h.handleClearLocationAlarm)

	s.AddTool(mcp.NewTool("flag-reminder",
		mcp.WithDescription("Flag or unflag a reminder (runs through the Reminders scripting interface)."),
		mcp.WithString("list", mcp.Description("List name (defaults to the configured list).")),
		mcp.WithString("reminder", mcp.Required(), mcp.Description("Reminder title.")),
		mcp.WithBoolean("flagged", mcp.Description("Desired flag state, default true.")),
	), h.handleFlag)
}

func (h *Handler) listArg(req mcp.CallToolRequest) string {
	list := req.GetString("list", "")
	if list == "" {
		return h.defaultList
	}
	return list
}

func (h *Handler) handleListLists(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := h.svc.ListLists(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(names)
}

func (h *Handler) handleGetReminders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := h.svc.GetReminders(ctx, h.listArg(req), req.GetBool("includeCompleted", false))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(out)
}

func (h *Handler) handleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.CreateReminder(ctx, h.listArg(req), title, req.GetString("body", ""), req.GetString("dueDate", ""))
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleComplete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.CompleteReminder(ctx, h.listArg(req), title)
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.DeleteReminder(ctx, h.listArg(req), title)
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	var p reminders.UpdateParams
	args := req.GetArguments()
	if v, ok := args["name"].(string); ok {
		p.Name = &v
	}
	if v, ok := args["body"].(string); ok {
		p.Body = &v
	}
	if v, ok := args["appendBody"].(string); ok {
		p.AppendBody = &v
	}
	if v, ok := args["dueDate"].(string); ok {
		p.DueDate = &v
	}
	env, err := h.svc.UpdateReminder(ctx, h.listArg(req), title, p)
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleSetPriority(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	priority, err := req.RequireInt("priority")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.SetPriority(ctx, h.listArg(req), title, priority)
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleSetDueAlarm(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	date, err := req.RequireString("date")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.SetDueAlarm(ctx, h.listArg(req), title, date)
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleSetRecurrence(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	frequency, err := req.RequireString("frequency")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.SetRecurrence(ctx, h.listArg(req), title, frequency,
		req.GetInt("interval", 1), req.GetString("endDate", ""), req.GetInt("endCount", 0))
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleGetRecurrence(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	out, err := h.svc.GetRecurrence(ctx, h.listArg(req), title)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(out)
}

func (h *Handler) handleClearRecurrence(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.ClearRecurrence(ctx, h.listArg(req), title)
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleSetLocationAlarm(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	latitude, err := req.RequireFloat("latitude")
	if err != nil {
		return errorResult(err), nil
	}
	longitude, err := req.RequireFloat("longitude")
	if err != nil {
		return errorResult(err), nil
	}
	radius, err := req.RequireFloat("radius")
	if err != nil {
		return errorResult(err), nil
	}
	proximity, err := req.RequireString("proximity")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.SetLocationAlarm(ctx, h.listArg(req), title,
		req.GetString("title", ""), latitude, longitude, radius, proximity)
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleGetLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	out, err := h.svc.GetLocation(ctx, h.listArg(req), title)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(out)
}

func (h *Handler) handleClearLocationAlarm(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.ClearLocationAlarm(ctx, h.listArg(req), title)
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}

func (h *Handler) handleFlag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("reminder")
	if err != nil {
		return errorResult(err), nil
	}
	env, err := h.svc.FlagReminder(ctx, h.listArg(req), title, req.GetBool("flagged", true))
	if err != nil {
		return errorResult(err), nil
	}
	return envelopeResult(env)
}
