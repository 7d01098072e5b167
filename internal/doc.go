// internal is internal packages for dduwash.
//
// The board package renders the status widget through the Document interface.
// Only its HTML adapter refers to the dom package, so the renderer can run on any DOM.
// The bayerr, journal and testutil packages are used by every other package.
package internal
