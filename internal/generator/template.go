package generator

import "text/template"

type fileData struct {
	Package       string
	Contract      string
	RuntimePkg    string
	RuntimeImport string
	ABIJSON       string
	Declarations  string
	Methods       string
}

var fileTemplate = template.Must(template.New("binding").Parse(tmplBindingFile))

const tmplBindingFile = `// Code generated by evmgen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	{{.RuntimePkg}} "{{.RuntimeImport}}"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = fmt.Sprintf
	_ = big.NewInt
	_ = strings.NewReader
	_ = abi.ConvertType
	_ = common.Big1
	_ = types.BloomLookup
	_ = crypto.Keccak256Hash
)

// {{.Contract}}ABIJSON is the raw input ABI this binding was generated from.
const {{.Contract}}ABIJSON = {{.ABIJSON}}

// {{.Contract}} is a generated binding around the {{.Contract}} contract,
// covering event decoding and filtering.
type {{.Contract}} struct {
	abi      abi.ABI
	address  common.Address
	filterer {{.RuntimePkg}}.LogFilterer
}

// New{{.Contract}} parses the embedded ABI and binds it to the contract
// deployed at address.
func New{{.Contract}}(address common.Address, filterer {{.RuntimePkg}}.LogFilterer) (*{{.Contract}}, error) {
	parsed, err := abi.JSON(strings.NewReader({{.Contract}}ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse {{.Contract}} ABI: %w", err)
	}
	return &{{.Contract}}{abi: parsed, address: address, filterer: filterer}, nil
}

{{.Declarations}}
{{.Methods}}`
