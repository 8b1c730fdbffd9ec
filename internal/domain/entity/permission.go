package entity

// PermissionType represents an optional capability the user must grant.
type PermissionType string

const (
	// PermissionTypeDownloads allows watching download directories.
	PermissionTypeDownloads PermissionType = "downloads"
)

// KnownPermissionTypes lists every grantable permission.
func KnownPermissionTypes() []PermissionType {
	return []PermissionType{PermissionTypeDownloads}
}

// ParsePermissionType validates a user supplied permission name.
func ParsePermissionType(s string) (PermissionType, bool) {
	for _, pt := range KnownPermissionTypes() {
		if string(pt) == s {
			return pt, true
		}
	}
	return "", false
}

// PermissionDecision represents the user's decision for a permission.
type PermissionDecision string

const (
	// PermissionGranted means the permission was allowed.
	PermissionGranted PermissionDecision = "granted"

	// PermissionDenied means the permission was revoked or never granted.
	PermissionDenied PermissionDecision = "denied"
)

// PermissionRecord stores the current decision for one permission type.
type PermissionRecord struct {
	Type      PermissionType
	Decision  PermissionDecision
	UpdatedAt int64 // Unix timestamp in seconds when this record was last updated
}

// IsGranted returns true if the permission is granted.
func (p *PermissionRecord) IsGranted() bool {
	return p != nil && p.Decision == PermissionGranted
}

// PermissionEvent is published when a grant is added or removed.
type PermissionEvent struct {
	Type    PermissionType
	Granted bool
}
