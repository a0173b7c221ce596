//go:build antsdebug

package ants

const debugAssertions = true
