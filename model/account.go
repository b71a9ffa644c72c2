package model

import "github.com/google/uuid"

// ExternalObject holds the fields shared by server-side records.
type ExternalObject struct {
	ExternalID       uuid.UUID `json:"externalId,omitempty"`
	CreationTime     int64     `json:"creationTime,omitempty"`
	ModificationTime int64     `json:"modificationTime,omitempty"`
	IsDeleted        bool      `json:"isDeleted,omitempty"`
}

// Account is the common part of users and groups.
type Account struct {
	ExternalObject
	Image       string         `json:"image,omitempty"`
	Description string         `json:"description,omitempty"`
	Website     string         `json:"website,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// User is an NDEx user account.
type User struct {
	Account
	EmailAddress string `json:"emailAddress,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	DiskQuota    int64  `json:"diskQuota,omitempty"`
	DiskUsed     int64  `json:"diskUsed,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	IsIndividual bool   `json:"isIndividual,omitempty"`
	UserName     string `json:"userName,omitempty"`
	Password     string `json:"password,omitempty"`
	IsVerified   bool   `json:"isVerified,omitempty"`
}

// Group is an NDEx group account.
type Group struct {
	Account
	GroupName string `json:"groupName" validate:"required"`
}

// Membership links a member account to a resource with a permission.
type Membership struct {
	Permissions       Permissions    `json:"permissions,omitempty"`
	MembershipType    MembershipType `json:"membershipType,omitempty"`
	MemberUUID        uuid.UUID      `json:"memberUUID"`
	ResourceUUID      uuid.UUID      `json:"resourceUUID"`
	MemberAccountName string         `json:"memberAccountName,omitempty"`
	ResourceName      string         `json:"resourceName,omitempty"`
}

// NDExStatus is the body of /admin/status.
type NDExStatus struct {
	NetworkCount int64          `json:"networkCount"`
	UserCount    int64          `json:"userCount"`
	GroupCount   int64          `json:"groupCount"`
	Message      string         `json:"message"`
	Properties   map[string]any `json:"properties,omitempty"`
}
