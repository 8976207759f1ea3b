package common

const Version = `v0.6.1`
