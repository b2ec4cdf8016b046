// Package query answers structured questions about the stored article
// collection, such as how many articles match a set of field filters.
package query
