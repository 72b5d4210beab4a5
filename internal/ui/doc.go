// Package ui renders interactive terminal progress for batch emission.
package ui
