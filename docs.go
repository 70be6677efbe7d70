package main

import (
	"bytes"
	"io/ioutil"

	"github.com/alecthomas/template"
	"github.com/swaggo/swag"
)

type swaggerInfo struct {
	Version     string
	Host        string
	BasePath    string
	Title       string
	Description string
}

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = swaggerInfo{
	Version:     "1.0",
	BasePath:    "/api/v1",
	Title:       "Memoless API",
	Description: "Registers THORChain memos and validates reference-encoded deposit amounts",
}

// SwaggerDocPath : swagger path
const (
	SwaggerDocPath = "./memoless-api.yaml"
)

type s struct{}

func (s *s) ReadDoc() string {
	result, err := ioutil.ReadFile(SwaggerDocPath)
	if err != nil {
		return ""
	}

	doc := string(result)

	t, err := template.New("swagger_info").Parse(doc)
	if err != nil {
		return doc
	}

	var tpl bytes.Buffer
	if err := t.Execute(&tpl, SwaggerInfo); err != nil {
		return doc
	}

	return tpl.String()
}

func init() {
	swag.Register(swag.Name, &s{})
}
