// Package reorder implements the single-element move used when a field is
// dragged to a new position. A move never creates, drops or duplicates items;
// when the gesture cannot be resolved (unknown source, unknown or missing
// drop target, or dropping an item onto itself) the order is returned
// unchanged.
package reorder
