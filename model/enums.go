package model

// Permissions is an access level on a network, group or membership.
type Permissions string

const (
	PermissionRead       Permissions = "READ"
	PermissionWrite      Permissions = "WRITE"
	PermissionAdmin      Permissions = "ADMIN"
	PermissionMember     Permissions = "MEMBER"
	PermissionGroupAdmin Permissions = "GROUPADMIN"
)

// Visibility controls who can find and read a network.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// MembershipType distinguishes user and group memberships.
type MembershipType string

const (
	MembershipUser    MembershipType = "USER"
	MembershipGroup   MembershipType = "GROUP"
	MembershipNetwork MembershipType = "NETWORK"
)

// TaskStatus is the lifecycle state of a server task.
type TaskStatus string

const (
	TaskStatusAll                   TaskStatus = "ALL"
	TaskStatusQueued                TaskStatus = "QUEUED"
	TaskStatusProcessing            TaskStatus = "PROCESSING"
	TaskStatusCompleted             TaskStatus = "COMPLETED"
	TaskStatusCompletedWithWarnings TaskStatus = "COMPLETED_WITH_WARNINGS"
	TaskStatusCompletedWithErrors   TaskStatus = "COMPLETED_WITH_ERRORS"
	TaskStatusFailed                TaskStatus = "FAILED"
	TaskStatusStaged                TaskStatus = "STAGED"
)

// TaskType identifies what a task does.
type TaskType string

const (
	TaskTypeExportNetworkToFile TaskType = "EXPORT_NETWORK_TO_FILE"
	TaskTypeCreateNetworkCache  TaskType = "CREATE_NETWORK_CACHE"
	TaskTypeProcessUploaded     TaskType = "PROCESS_UPLOADED_NETWORK"
)

// Priority is the scheduling priority of a task.
type Priority string

const (
	PriorityHighest Priority = "HIGHEST"
	PriorityHigh    Priority = "HIGH"
	PriorityMedium  Priority = "MEDIUM"
	PriorityLow     Priority = "LOW"
	PriorityLowest  Priority = "LOWEST"
)

// FileFormat is the file type of an exported or uploaded network.
type FileFormat string

const (
	FileFormatCX      FileFormat = "CX"
	FileFormatCX2     FileFormat = "CX2"
	FileFormatGraphML FileFormat = "GRAPHML"
	FileFormatGSEA    FileFormat = "GSEA"
)

// NetworkIndexLevel is how deeply a network is indexed for search.
type NetworkIndexLevel string

const (
	IndexLevelNone NetworkIndexLevel = "NONE"
	IndexLevelMeta NetworkIndexLevel = "META"
	IndexLevelAll  NetworkIndexLevel = "ALL"
)

// AccessKeyAction enables or disables a network's access key.
type AccessKeyAction string

const (
	AccessKeyEnable  AccessKeyAction = "enable"
	AccessKeyDisable AccessKeyAction = "disable"
)

// AdminStatusFormat selects how much server information /admin/status returns.
type AdminStatusFormat string

const (
	StatusFormatFull  AdminStatusFormat = "full"
	StatusFormatShort AdminStatusFormat = "short"
)

// Export formats accepted by the batch export endpoint.
const (
	ExportFormatGraphML = "GraphML"
	ExportFormatGSEA    = "GSEA Gene Set"
)
