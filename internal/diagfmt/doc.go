// Package diagfmt renders diagnostic bags for people (Pretty) and for tools
// (JSON).
package diagfmt
