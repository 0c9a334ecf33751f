// Package bookslentbymember implements the Books Lent By Member query.
//
// It projects the journal history into the list of books a member currently
// holds, oldest loan first. Returned and lost copies drop out of the list.
// The projection is a pure function; QueryHandler adds the journal read.
package bookslentbymember
