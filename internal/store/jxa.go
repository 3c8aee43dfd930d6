package store

// JXA programs for the EventKit bridge. Each program defines run() so
// osascript prints its return value (a JSON string) on stdout. A thrown
// error exits nonzero with the message on stderr, which the Go side surfaces
// verbatim.
//
// Scripts expecting arguments are prefixed with a `const payload = {...};`
// line by withPayload before execution.

const jxaPrelude = `
ObjC.import('EventKit');
ObjC.import('CoreLocation');

const fmt = $.NSDateFormatter.alloc.init;
fmt.dateFormat = 'yyyy-MM-dd HH:mm';

function newStore() {
	return $.EKEventStore.alloc.init;
}

function pumpUntil(check) {
	while (!check()) {
		$.NSRunLoop.currentRunLoop.runUntilDate($.NSDate.dateWithTimeIntervalSinceNow(0.05));
	}
}

function calendarNamed(store, name) {
	const cals = store.calendarsForEntityType($.EKEntityTypeReminder);
	for (let i = 0; i < cals.count; i++) {
		const cal = cals.objectAtIndex(i);
		if (ObjC.unwrap(cal.title) === name) {
			return cal;
		}
	}
	throw new Error('list not found: ' + name);
}

function fetchAll(store, calendar) {
	let result = null;
	let done = false;
	const predicate = store.predicateForRemindersInCalendars($.NSArray.arrayWithObject(calendar));
	store.fetchRemindersMatchingPredicateCompletion(predicate, function(reminders) {
		result = reminders;
		done = true;
	});
	pumpUntil(function() { return done; });
	if (result === null) {
		throw new Error('reminder fetch returned nothing');
	}
	return result;
}

function formatDate(date) {
	return ObjC.unwrap(fmt.stringFromDate(date));
}

function freqName(f) {
	if (f === $.EKRecurrenceFrequencyDaily) return 'daily';
	if (f === $.EKRecurrenceFrequencyWeekly) return 'weekly';
	if (f === $.EKRecurrenceFrequencyMonthly) return 'monthly';
	return 'yearly';
}

function freqValue(name) {
	if (name === 'daily') return $.EKRecurrenceFrequencyDaily;
	if (name === 'weekly') return $.EKRecurrenceFrequencyWeekly;
	if (name === 'monthly') return $.EKRecurrenceFrequencyMonthly;
	return $.EKRecurrenceFrequencyYearly;
}
`

const jxaRequestAccess = jxaPrelude + `
function run() {
	const store = newStore();
	let granted = false;
	let done = false;
	store.requestFullAccessToRemindersWithCompletion(function(ok, err) {
		granted = ok;
		done = true;
	});
	pumpUntil(function() { return done; });
	return JSON.stringify({granted: granted});
}
`

const jxaListCalendars = jxaPrelude + `
function run() {
	const store = newStore();
	const cals = store.calendarsForEntityType($.EKEntityTypeReminder);
	const names = [];
	for (let i = 0; i < cals.count; i++) {
		names.push(ObjC.unwrap(cals.objectAtIndex(i).title));
	}
	return JSON.stringify(names);
}
`

// Detailed projection. Reading dueDateComponents.date on an item without a
// due date can throw; the caller degrades to jxaFetchTitles for the whole
// call when that happens.
const jxaFetchReminders = jxaPrelude + `
function projectAlarms(reminder) {
	const out = [];
	const alarms = reminder.alarms;
	if (alarms.isNil()) {
		return out;
	}
	for (let i = 0; i < alarms.count; i++) {
		const alarm = alarms.objectAtIndex(i);
		if (!alarm.structuredLocation.isNil()) {
			const loc = alarm.structuredLocation;
			out.push({
				kind: 'location',
				title: loc.title.isNil() ? '' : ObjC.unwrap(loc.title),
				latitude: loc.geoLocation.coordinate.latitude,
				longitude: loc.geoLocation.coordinate.longitude,
				radius: loc.radius,
				proximity: alarm.proximity === $.EKAlarmProximityEnter ? 'enter'
					: alarm.proximity === $.EKAlarmProximityLeave ? 'leave' : 'none',
			});
		} else {
			out.push({kind: 'time', triggerAt: formatDate(alarm.absoluteDate)});
		}
	}
	return out;
}

function projectRecurrence(reminder) {
	const out = [];
	const rules = reminder.recurrenceRules;
	if (rules.isNil()) {
		return out;
	}
	for (let i = 0; i < rules.count; i++) {
		const rule = rules.objectAtIndex(i);
		const rec = {frequency: freqName(rule.frequency), interval: rule.interval};
		if (!rule.recurrenceEnd.isNil()) {
			if (rule.recurrenceEnd.occurrenceCount > 0) {
				rec.endCount = rule.recurrenceEnd.occurrenceCount;
			} else {
				rec.endDate = formatDate(rule.recurrenceEnd.endDate);
			}
		}
		if (!rule.daysOfTheWeek.isNil() && rule.daysOfTheWeek.count > 0) {
			rec.daysOfWeek = [];
			for (let d = 0; d < rule.daysOfTheWeek.count; d++) {
				rec.daysOfWeek.push(rule.daysOfTheWeek.objectAtIndex(d).dayOfTheWeek - 1);
			}
		}
		out.push(rec);
	}
	return out;
}

function run() {
	const store = newStore();
	const calendar = calendarNamed(store, payload.list);
	const fetched = fetchAll(store, calendar);
	const out = [];
	for (let i = 0; i < fetched.count; i++) {
		const reminder = fetched.objectAtIndex(i);
		if (!payload.includeCompleted && reminder.completed) {
			continue;
		}
		const item = {
			id: ObjC.unwrap(reminder.calendarItemIdentifier),
			list: payload.list,
			title: ObjC.unwrap(reminder.title),
			notes: reminder.notes.isNil() ? '' : ObjC.unwrap(reminder.notes),
			completed: !!reminder.completed,
			dueDate: reminder.dueDateComponents.isNil() ? '' : formatDate(reminder.dueDateComponents.date),
			priority: reminder.priority,
			alarms: projectAlarms(reminder),
			recurrence: projectRecurrence(reminder),
		};
		out.push(item);
	}
	return JSON.stringify(out);
}
`

const jxaFetchTitles = jxaPrelude + `
function run() {
	const store = newStore();
	const calendar = calendarNamed(store, payload.list);
	const fetched = fetchAll(store, calendar);
	const out = [];
	for (let i = 0; i < fetched.count; i++) {
		const reminder = fetched.objectAtIndex(i);
		if (!payload.includeCompleted && reminder.completed) {
			continue;
		}
		out.push(ObjC.unwrap(reminder.title));
	}
	return JSON.stringify(out);
}
`

const jxaSaveReminder = jxaPrelude + `
ObjC.import('Foundation');

function parseDate(text) {
	const date = fmt.dateFromString(text);
	if (date.isNil()) {
		throw new Error('unparseable date: ' + text);
	}
	return date;
}

function reminderByID(store, id) {
	const item = store.calendarItemWithIdentifier(id);
	if (item.isNil()) {
		throw new Error('reminder not found: ' + id);
	}
	return item;
}

function applyAlarms(store, reminder) {
	// Replace wholesale: the Go side already enforced per-kind invariants.
	const existing = reminder.alarms;
	if (!existing.isNil()) {
		for (let i = existing.count - 1; i >= 0; i--) {
			reminder.removeAlarm(existing.objectAtIndex(i));
		}
	}
	for (const a of payload.alarms || []) {
		if (a.kind === 'time') {
			reminder.addAlarm($.EKAlarm.alarmWithAbsoluteDate(parseDate(a.triggerAt)));
		} else {
			const alarm = $.EKAlarm.alloc.init;
			const loc = $.EKStructuredLocation.locationWithTitle(a.title || '');
			loc.geoLocation = $.CLLocation.alloc.initWithLatitudeLongitude(a.latitude, a.longitude);
			loc.radius = a.radius;
			alarm.structuredLocation = loc;
			alarm.proximity = a.proximity === 'enter' ? $.EKAlarmProximityEnter : $.EKAlarmProximityLeave;
			reminder.addAlarm(alarm);
		}
	}
}

function applyRecurrence(store, reminder) {
	const existing = reminder.recurrenceRules;
	if (!existing.isNil()) {
		for (let i = existing.count - 1; i >= 0; i--) {
			reminder.removeRecurrenceRule(existing.objectAtIndex(i));
		}
	}
	for (const rec of payload.recurrence || []) {
		let end = $.nil;
		if (rec.endCount > 0) {
			end = $.EKRecurrenceEnd.recurrenceEndWithOccurrenceCount(rec.endCount);
		} else if (rec.endDate) {
			end = $.EKRecurrenceEnd.recurrenceEndWithEndDate(parseDate(rec.endDate));
		}
		reminder.addRecurrenceRule(
			$.EKRecurrenceRule.alloc.initRecurrenceWithFrequencyIntervalEnd(
				freqValue(rec.frequency), rec.interval, end));
	}
}

function run() {
	const store = newStore();
	let reminder;
	if (payload.id) {
		reminder = reminderByID(store, payload.id);
	} else {
		reminder = $.EKReminder.reminderWithEventStore(store);
		reminder.calendar = calendarNamed(store, payload.list);
	}
	reminder.title = payload.title;
	reminder.notes = payload.notes ? payload.notes : $.nil;
	reminder.completed = payload.completed;
	reminder.priority = payload.priority;
	if (payload.dueDate) {
		reminder.dueDateComponents = $.NSCalendar.currentCalendar.componentsFromDate(
			$.NSCalendarUnitYear | $.NSCalendarUnitMonth | $.NSCalendarUnitDay |
			$.NSCalendarUnitHour | $.NSCalendarUnitMinute,
			parseDate(payload.dueDate));
	} else {
		reminder.dueDateComponents = $.nil;
	}
	applyAlarms(store, reminder);
	applyRecurrence(store, reminder);

	const err = Ref();
	if (!store.saveReminderCommitError(reminder, true, err)) {
		throw new Error('save failed: ' + ObjC.unwrap(err[0].localizedDescription));
	}
	return JSON.stringify({id: ObjC.unwrap(reminder.calendarItemIdentifier)});
}
`

const jxaRemoveReminder = jxaPrelude + `
function run() {
	const store = newStore();
	const item = store.calendarItemWithIdentifier(payload.id);
	if (item.isNil()) {
		throw new Error('reminder not found: ' + payload.id);
	}
	const err = Ref();
	if (!store.removeReminderCommitError(item, true, err)) {
		throw new Error('remove failed: ' + ObjC.unwrap(err[0].localizedDescription));
	}
	return JSON.stringify({removed: true});
}
`
