package internal

var Version = "0.1.0"
