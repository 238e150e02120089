// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it under /swagger/.
package docs

import (
	"encoding/json"
	"strings"

	"catering/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catering API",
	Description:      "Catering marketplace for events, carts and orders with backup providers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate(),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// docTemplate renders the embedded document as JSON. Template delimiters
// never occur in it, so swag serves it unchanged.
func docTemplate() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(swagger)
	if err != nil || strings.Contains(string(raw), "{{") {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
