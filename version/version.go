package version

// Version is the current satchel release.
const Version = "0.2.0"
