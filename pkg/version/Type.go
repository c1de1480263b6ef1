package version

type Version struct {
	Mirror string `json:"mirror"`
	Commit string `json:"commit"`
	Go     string `json:"go"`
}
