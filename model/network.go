package model

import "github.com/google/uuid"

// PropertyValuePair is a typed network attribute.
type PropertyValuePair struct {
	PredicateString string `json:"predicateString"`
	Value           string `json:"value"`
	DataType        string `json:"dataType,omitempty"`
	SubNetworkID    *int64 `json:"subNetworkId,omitempty"`
}

// SimplePropertyValuePair is an untyped name/value attribute.
type SimplePropertyValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NetworkSummary describes a network without its content.
type NetworkSummary struct {
	ExternalObject
	Name          string              `json:"name,omitempty"`
	Description   string              `json:"description,omitempty"`
	EdgeCount     int                 `json:"edgeCount,omitempty"`
	NodeCount     int                 `json:"nodeCount,omitempty"`
	Visibility    Visibility          `json:"visibility,omitempty"`
	Owner         string              `json:"owner,omitempty"`
	OwnerUUID     uuid.UUID           `json:"ownerUUID,omitempty"`
	IsReadOnly    bool                `json:"isReadOnly,omitempty"`
	Version       string              `json:"version,omitempty"`
	URI           string              `json:"URI,omitempty"`
	SubnetworkIDs []int64             `json:"subnetworkIds,omitempty"`
	Properties    []PropertyValuePair `json:"properties,omitempty"`
	ErrorMessage  string              `json:"errorMessage,omitempty"`
	IsValid       bool                `json:"isValid,omitempty"`
	Warnings      []string            `json:"warnings,omitempty"`
	IsShowcase    bool                `json:"isShowcase,omitempty"`
	IsCompleted   bool                `json:"isCompleted,omitempty"`
	DOI           string              `json:"doi,omitempty"`
	IsCertified   bool                `json:"isCertified,omitempty"`
	IndexLevel    NetworkIndexLevel   `json:"indexLevel,omitempty"`
	HasLayout     bool                `json:"hasLayout,omitempty"`
	HasSample     bool                `json:"hasSample,omitempty"`
}

// NetworkSet is a named collection of networks.
type NetworkSet struct {
	ExternalObject
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description,omitempty"`
	OwnerID     uuid.UUID   `json:"ownerId,omitempty"`
	Networks    []uuid.UUID `json:"networks,omitempty"`
	Showcased   bool        `json:"showcased,omitempty"`
	DOI         string      `json:"doi,omitempty"`
}

// NetworkSetSystemProperties are the server-managed flags of a network set.
type NetworkSetSystemProperties struct {
	Showcase *bool `json:"showcase,omitempty"`
}

// NetworkSystemProperties are the server-managed flags of a network.
// Nil fields are left unchanged by the server.
type NetworkSystemProperties struct {
	NetworkSetSystemProperties
	Visibility *Visibility        `json:"visibility,omitempty"`
	ReadOnly   *bool              `json:"readOnly,omitempty"`
	IndexLevel *NetworkIndexLevel `json:"index_level,omitempty"`
}

// NetworkExportRequest is the body of /batch/network/export.
type NetworkExportRequest struct {
	ExportFormat string      `json:"exportFormat" validate:"required"`
	NetworkIDs   []uuid.UUID `json:"networkIds" validate:"required,min=1"`
}

// MetadataElement describes one CX aspect of a network.
type MetadataElement struct {
	Name             string              `json:"name"`
	Version          string              `json:"version,omitempty"`
	IDCounter        int64               `json:"idCounter,omitempty"`
	Properties       []map[string]string `json:"properties,omitempty"`
	ElementCount     int64               `json:"elementCount,omitempty"`
	ConsistencyGroup int64               `json:"consistencyGroup,omitempty"`
}

// MetadataCollection is the list of aspect descriptors of a network.
type MetadataCollection struct {
	MetaData []MetadataElement `json:"metaData"`
}

// ProvenanceEntity is the root of a network's provenance history.
type ProvenanceEntity struct {
	URI           string                    `json:"uri,omitempty"`
	Properties    []SimplePropertyValuePair `json:"properties,omitempty"`
	CreationEvent *ProvenanceEvent          `json:"creationEvent,omitempty"`
}

// ProvenanceEvent is one step that produced a provenance entity.
type ProvenanceEvent struct {
	EventType     string                    `json:"eventType,omitempty"`
	StartedAtTime Timestamp                 `json:"startedAtTime"`
	EndedAtTime   Timestamp                 `json:"endedAtTime"`
	Inputs        []ProvenanceEntity        `json:"inputs,omitempty"`
	Properties    []SimplePropertyValuePair `json:"properties,omitempty"`
}
