package entity

// Kind names an entity collection. The set is closed: request-supplied names
// are matched case-sensitively against the lowercase constants below and
// anything else is ErrUnknownEntity.
type Kind string

const (
	KindUser              Kind = "user"
	KindEmployee          Kind = "employee"
	KindTeam              Kind = "team"
	KindAttendance        Kind = "attendance"
	KindLeave             Kind = "leave"
	KindTask              Kind = "task"
	KindTimesheet         Kind = "timesheet"
	KindPayroll           Kind = "payroll"
	KindJob               Kind = "job"
	KindApplication       Kind = "application"
	KindResumeParseResult Kind = "resumeparseresult"
	KindPerformance       Kind = "performance"
	KindAnnouncement      Kind = "announcement"
	KindTicket            Kind = "ticket"
	KindNotification      Kind = "notification"
)

// SchemaFor resolves an entity kind name to its schema.
func SchemaFor(name string) (Schema, bool) {
	schema, ok := schemas[Kind(name)]
	return schema, ok
}

// Kinds returns all registered kind names.
func Kinds() []Kind {
	out := make([]Kind, 0, len(schemas))
	for kind := range schemas {
		out = append(out, kind)
	}
	return out
}

func bound(v float64) *float64 { return &v }

var schemas = map[Kind]Schema{
	KindUser: {
		Kind: KindUser,
		Fields: []Field{
			{Name: "name", Type: String, Required: true},
			{Name: "email", Type: String, Required: true, Email: true},
			{Name: "role", Type: String, Enum: []string{"executive", "team_lead", "employee"}, Default: "employee"},
			{Name: "department", Type: String},
			{Name: "is_active", Type: Bool, Default: true},
		},
	},
	KindEmployee: {
		Kind: KindEmployee,
		Fields: []Field{
			{Name: "user_id", Type: String, Required: true},
			{Name: "employee_id", Type: String, Required: true},
			{Name: "title", Type: String, Required: true},
			{Name: "manager_id", Type: String},
			{Name: "team", Type: String},
			{Name: "location", Type: String},
			{Name: "salary", Type: Float, Min: bound(0)},
		},
	},
	KindTeam: {
		Kind: KindTeam,
		Fields: []Field{
			{Name: "name", Type: String, Required: true},
			{Name: "lead_user_id", Type: String},
			{Name: "members", Type: StringList, Default: []string{}},
		},
	},
	KindAttendance: {
		Kind: KindAttendance,
		Fields: []Field{
			{Name: "user_id", Type: String, Required: true},
			{Name: "date", Type: Date, Required: true},
			{Name: "status", Type: String, Enum: []string{"present", "absent", "remote", "leave"}, Default: "present"},
			{Name: "check_in", Type: String},
			{Name: "check_out", Type: String},
		},
	},
	KindLeave: {
		Kind: KindLeave,
		Fields: []Field{
			{Name: "user_id", Type: String, Required: true},
			{Name: "start_date", Type: Date, Required: true},
			{Name: "end_date", Type: Date, Required: true},
			{Name: "type", Type: String, Enum: []string{"annual", "sick", "unpaid", "maternity", "paternity", "other"}, Default: "annual"},
			{Name: "reason", Type: String},
			{Name: "status", Type: String, Enum: []string{"pending", "approved", "rejected"}, Default: "pending"},
		},
	},
	KindTask: {
		Kind: KindTask,
		Fields: []Field{
			{Name: "title", Type: String, Required: true},
			{Name: "description", Type: String},
			{Name: "assignee_id", Type: String, Required: true},
			{Name: "due_date", Type: Date},
			{Name: "status", Type: String, Enum: []string{"todo", "in_progress", "blocked", "done"}, Default: "todo"},
			{Name: "tags", Type: StringList, Default: []string{}},
		},
	},
	KindTimesheet: {
		Kind: KindTimesheet,
		Fields: []Field{
			{Name: "user_id", Type: String, Required: true},
			{Name: "task_id", Type: String},
			{Name: "date", Type: Date, Required: true},
			{Name: "hours", Type: Float, Required: true, Min: bound(0), Max: bound(24)},
			{Name: "notes", Type: String},
		},
	},
	KindPayroll: {
		Kind: KindPayroll,
		Fields: []Field{
			{Name: "user_id", Type: String, Required: true},
			{Name: "period_start", Type: Date, Required: true},
			{Name: "period_end", Type: Date, Required: true},
			{Name: "gross", Type: Float, Required: true, Min: bound(0)},
			{Name: "tax", Type: Float, Min: bound(0), Default: 0.0},
			{Name: "deductions", Type: Float, Min: bound(0), Default: 0.0},
			{Name: "net", Type: Float, Required: true, Min: bound(0)},
			{Name: "status", Type: String, Enum: []string{"pending", "paid", "on_hold"}, Default: "pending"},
		},
	},
	KindJob: {
		Kind: KindJob,
		Fields: []Field{
			{Name: "title", Type: String, Required: true},
			{Name: "department", Type: String},
			{Name: "location", Type: String},
			{Name: "description", Type: String},
			{Name: "status", Type: String, Enum: []string{"open", "paused", "closed"}, Default: "open"},
		},
	},
	KindApplication: {
		Kind: KindApplication,
		Fields: []Field{
			{Name: "job_id", Type: String, Required: true},
			{Name: "name", Type: String, Required: true},
			{Name: "email", Type: String, Required: true, Email: true},
			{Name: "phone", Type: String},
			{Name: "resume_text", Type: String},
			{Name: "stage", Type: String, Enum: []string{"applied", "screen", "interview", "offer", "hired", "rejected"}, Default: "applied"},
			{Name: "score", Type: Float, Min: bound(0), Max: bound(100)},
		},
	},
	KindResumeParseResult: {
		Kind: KindResumeParseResult,
		Fields: []Field{
			{Name: "application_id", Type: String, Required: true},
			{Name: "name", Type: String},
			{Name: "email", Type: String},
			{Name: "phone", Type: String},
			{Name: "skills", Type: StringList, Default: []string{}},
			{Name: "years_experience", Type: Float},
			{Name: "education", Type: String},
			{Name: "raw_summary", Type: String},
		},
	},
	KindPerformance: {
		Kind: KindPerformance,
		Fields: []Field{
			{Name: "user_id", Type: String, Required: true},
			{Name: "period", Type: String, Required: true},
			{Name: "goals", Type: StringList, Default: []string{}},
			{Name: "rating", Type: Float, Min: bound(1), Max: bound(5)},
			{Name: "feedback", Type: String},
		},
	},
	KindAnnouncement: {
		Kind: KindAnnouncement,
		Fields: []Field{
			{Name: "title", Type: String, Required: true},
			{Name: "message", Type: String, Required: true},
			{Name: "audience", Type: String, Enum: []string{"all", "executive", "team_lead", "employee"}, Default: "all"},
			{Name: "priority", Type: String, Enum: []string{"low", "normal", "high"}, Default: "normal"},
			{Name: "expires_at", Type: DateTime},
		},
	},
	KindTicket: {
		Kind: KindTicket,
		Fields: []Field{
			{Name: "user_id", Type: String, Required: true},
			{Name: "subject", Type: String, Required: true},
			{Name: "message", Type: String, Required: true},
			{Name: "status", Type: String, Enum: []string{"open", "in_progress", "resolved", "closed"}, Default: "open"},
			{Name: "assignee_id", Type: String},
			{Name: "category", Type: String},
		},
	},
	KindNotification: {
		Kind: KindNotification,
		Fields: []Field{
			{Name: "user_id", Type: String, Required: true},
			{Name: "type", Type: String, Required: true},
			{Name: "title", Type: String, Required: true},
			{Name: "body", Type: String, Required: true},
			{Name: "read", Type: Bool, Default: false},
		},
	},
}
