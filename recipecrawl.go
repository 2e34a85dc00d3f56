// Package recipecrawl provides a breadth-first recipe site crawler.
// It discovers recipe pages from a seed page, extracts their title, sectioned
// text and a representative image, saves the results to a flat text file and
// reports title frequencies and an image gallery.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bloom/, lipgloss/).
package recipecrawl
