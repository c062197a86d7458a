package command

// Identity is the daemon's default node identity as reported by
// `yagna id show`.
type Identity struct {
	NodeID    string  `json:"nodeId"`
	Alias     *string `json:"alias"`
	IsDefault bool    `json:"isDefault"`
	IsLocked  bool    `json:"isLocked"`
}

// Release describes one released daemon version.
type Release struct {
	Version   string `json:"version"`
	Name      string `json:"name"`
	Seen      bool   `json:"seen"`
	ReleaseTs string `json:"releaseTs"`
}

// VersionInfo is the structured reply of `yagna version show`: the
// currently running release and, when an upgrade is available, the
// pending one.
type VersionInfo struct {
	Current Release  `json:"current"`
	Pending *Release `json:"pending"`
}

// VersionRaw is a version banner parsed from free text rather than
// JSON. An empty Build means the binary is not a CI build.
type VersionRaw struct {
	Version string
	Sha     string
	Date    string
	Build   string
}
