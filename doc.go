// Package sqlq is an SQL statement builder producing literal SQL text.
/*

SQL Statement Builder

sqlq statement builder provides a way to:
- Assemble SELECT, INSERT, UPDATE and DELETE statements from chained calls,
- Write values inline as SQL literals, quoting strings and turning nil into NULL,
- Convert structs tagged with `db` into rows to be inserted or updated.

Statements are not parameterized. Values are escaped by doubling single quotes
only, which is not enough to protect against untrusted input.
*/
package sqlq
