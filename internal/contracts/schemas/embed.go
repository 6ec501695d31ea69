package schemas

import "embed"

// SchemasFS holds every JSON Schema contract shipped with the service,
// laid out as records/<record-name>/v<N>.json.
//
//go:embed records
var SchemasFS embed.FS
