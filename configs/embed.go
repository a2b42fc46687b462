package configs

import _ "embed"

// ApplicationYML holds the default application properties, used when no
// PROPERTIES_FILE_PATH override is set.
//
//go:embed application.yml
var ApplicationYML []byte

// MessagesYML holds the default message catalogue.
//
//go:embed messages.yml
var MessagesYML []byte
