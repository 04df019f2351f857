package internal

// Version is the current langswitch release version
const Version = "0.3.0"
