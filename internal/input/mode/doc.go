// Package mode defines the application's input modes.
//
// Each mode owns an independent binding tree, so the same chord can mean
// different things depending on which screen is active. TorrentList is the
// default mode; AddTorrent is entered while a torrent is being added.
package mode
