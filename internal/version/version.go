package version

// Version is the hintline release version.
const Version = "0.1.0"
