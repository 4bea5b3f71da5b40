// Package typeddata implements the Starknet off-chain typed data encoding:
// type hashes from the canonical type encoding, Pedersen struct hashes and
// the account-bound final message hash that is signed on the stark curve.
package typeddata

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/crypto"
	"github.com/paradex-labs/paradex-go/pkg/felt"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// DomainTypeName is the type name of the domain separator struct.
const DomainTypeName = "StarkNetDomain"

// messagePrefix is the short string "StarkNet Message" that anchors every
// final message hash.
var messagePrefix = mustShortString("StarkNet Message")

// Definition is a single typed member, in declaration order.
type Definition struct {
	Name string
	Type string
}

// TypeDef is the ordered member list of one struct type.
type TypeDef struct {
	Definitions []Definition
}

// Domain identifies the venue instance a signature is bound to. ChainID is
// the hex felt form of the chain identifier short string.
type Domain struct {
	Name    string
	ChainID string
	Version string
}

// Message supplies the felt encoding of each field of the primary type.
// Implementations return an error wrapping types.ErrSigning for field names
// they do not carry.
type Message interface {
	EncodeField(name string) (*big.Int, error)
}

// TypedData binds a type universe, a primary type and a domain. Values are
// immutable after New.
type TypedData struct {
	types       map[string]TypeDef
	primaryType string
	domain      Domain
}

// New validates that the primary type and the domain type are defined and
// returns the typed data descriptor.
func New(typeDefs map[string]TypeDef, primaryType string, domain Domain) (*TypedData, error) {
	if _, ok := typeDefs[primaryType]; !ok {
		return nil, errors.Wrapf(types.ErrSigning, "primary type %q not defined", primaryType)
	}
	if _, ok := typeDefs[DomainTypeName]; !ok {
		return nil, errors.Wrapf(types.ErrSigning, "domain type %q not defined", DomainTypeName)
	}
	return &TypedData{types: typeDefs, primaryType: primaryType, domain: domain}, nil
}

// PrimaryType returns the name of the primary type.
func (td *TypedData) PrimaryType() string {
	return td.primaryType
}

// Domain returns the bound domain.
func (td *TypedData) Domain() Domain {
	return td.domain
}

// EncodeType serializes a type as Name(member1:type1,member2:type2,...) with
// members in declaration order and no whitespace.
func (td *TypedData) EncodeType(name string) (string, error) {
	def, ok := td.types[name]
	if !ok {
		return "", errors.Wrapf(types.ErrSigning, "type %q not defined", name)
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, d := range def.Definitions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(d.Name)
		b.WriteByte(':')
		b.WriteString(d.Type)
	}
	b.WriteByte(')')
	return b.String(), nil
}

// TypeHash returns the starknet-keccak of the canonical type encoding.
func (td *TypedData) TypeHash(name string) (*big.Int, error) {
	enc, err := td.EncodeType(name)
	if err != nil {
		return nil, err
	}
	return crypto.SelectorFromName(enc), nil
}

// StructHash hashes a struct instance: PedersenArray over the type hash
// followed by each member's felt encoding in declaration order.
func (td *TypedData) StructHash(name string, msg Message) (*big.Int, error) {
	typeHash, err := td.TypeHash(name)
	if err != nil {
		return nil, err
	}
	def := td.types[name]
	elems := make([]*big.Int, 0, len(def.Definitions)+1)
	elems = append(elems, typeHash)
	for _, d := range def.Definitions {
		if d.Type != "felt" {
			return nil, errors.Wrapf(types.ErrSigning, "unsupported member type %q in %q", d.Type, name)
		}
		v, err := msg.EncodeField(d.Name)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return crypto.PedersenArray(elems), nil
}

// DomainHash returns the struct hash of the bound domain.
func (td *TypedData) DomainHash() (*big.Int, error) {
	return td.StructHash(DomainTypeName, domainMessage{td.domain})
}

// MessageHash computes the final account-bound hash:
// PedersenArray("StarkNet Message", domainHash, accountAddress, structHash).
func (td *TypedData) MessageHash(accountAddress *big.Int, msg Message) (*big.Int, error) {
	if accountAddress == nil {
		return nil, errors.Wrap(types.ErrSigning, "nil account address")
	}
	domainHash, err := td.DomainHash()
	if err != nil {
		return nil, err
	}
	structHash, err := td.StructHash(td.primaryType, msg)
	if err != nil {
		return nil, err
	}
	return crypto.PedersenArray([]*big.Int{messagePrefix, domainHash, accountAddress, structHash}), nil
}

// EncodeValue encodes a scalar value for a member type. Only felt members
// exist in this protocol: 0x-prefixed hex, a decimal numeral, or a UTF-8
// short string of at most 31 bytes.
func EncodeValue(memberType, value string) (*big.Int, error) {
	if memberType != "felt" {
		return nil, errors.Wrapf(types.ErrSigning, "unsupported member type %q", memberType)
	}
	v, err := felt.FromString(value)
	if err != nil {
		return nil, errors.Wrap(types.ErrSigning, err.Error())
	}
	return v, nil
}

// domainMessage adapts a Domain to the Message interface for hashing.
type domainMessage struct {
	domain Domain
}

func (m domainMessage) EncodeField(name string) (*big.Int, error) {
	switch name {
	case "name":
		return EncodeValue("felt", m.domain.Name)
	case "chainId":
		return EncodeValue("felt", m.domain.ChainID)
	case "version":
		return EncodeValue("felt", m.domain.Version)
	}
	return nil, errors.Wrapf(types.ErrSigning, "missing domain field %q", name)
}

func mustShortString(s string) *big.Int {
	v, err := felt.FromShortString(s)
	if err != nil {
		panic(err)
	}
	return v
}
