package model

// Version is the release reported by --version and compared by --update.
const Version = "v0.3.1"
