package utils

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata in como JSON indentado; []byte é tratado como JSON já serializado
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return fmt.Sprintf("%v", in)
		}
	}

	// jsoniter só indenta com espaços
	var out bytes.Buffer
	if err := stdjson.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}
	return out.String()
}
