package core

// Profile is a build variant: it selects the cargo optimization flag and the
// artifact directory.
type Profile string

const (
	ProfileDebug   Profile = "debug"
	ProfileRelease Profile = "release"
)

func (p Profile) String() string {
	return string(p)
}

// BuildArgs returns the extra cargo build arguments for the profile.
func (p Profile) BuildArgs() []string {
	if p == ProfileRelease {
		return []string{"--release"}
	}
	return nil
}
