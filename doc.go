// winpriv abstracts away windows token privilege manipulation with functions you are more likely to use.
// The library exposes easy-to-use functions to query a token's privileges,
// enable/disable/remove them, and scope elevated privileges to an operation
// with guaranteed restoration.
package winpriv
