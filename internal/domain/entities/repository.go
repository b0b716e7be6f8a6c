package entities

// Repository identifies a repository on the source host, as referenced by a
// hosting request.
type Repository struct {
	Owner         string
	Name          string
	FullName      string
	DefaultBranch string
	// ParentFullName is the "owner/name" of the fork parent; empty when the
	// repository is not a fork or the host exposes no lineage.
	ParentFullName string
}
