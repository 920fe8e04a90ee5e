// Package web is the browser host of the slide deck.
//
// The server renders the deck shell to HTML with golang.org/x/net/html and
// keeps one navigation session per websocket connection. The page script
// forwards whitelisted keys and button clicks over the socket and swaps in
// the HTML the server sends back. Default scrolling for suppressed keys is
// prevented in the page itself, since that has to happen synchronously in
// the browser's key handler.
package web
