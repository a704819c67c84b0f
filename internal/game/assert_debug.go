//go:build debug

package game

const debugAsserts = true
