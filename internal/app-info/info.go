package app_info

// NAME the application name used for config, cache, and log paths
const NAME = "deckhand"

// VERSION current application version
const VERSION = "v0.1.0"
