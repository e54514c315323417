package model

import (
	"fmt"
	"strings"
)

// EnumError is returned when a string does not name a member of a closed set.
type EnumError struct {
	Type  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Type, e.Value)
}

// ItemKind discriminates wood and core inventory lines.
type ItemKind string

const (
	ItemKindWood ItemKind = "wood"
	ItemKindCore ItemKind = "core"
)

// ItemKinds lists every valid ItemKind.
var ItemKinds = []ItemKind{ItemKindWood, ItemKindCore}

// ParseItemKind parses s case-insensitively.
func ParseItemKind(s string) (ItemKind, error) {
	return parseEnum("item kind", s, ItemKinds, strings.EqualFold)
}

func (k ItemKind) Valid() bool { return contains(ItemKinds, k) }

// Flexibility describes how much a wand bends.
type Flexibility string

const (
	FlexRigid      Flexibility = "rigid"
	FlexUnyielding Flexibility = "unyielding"
	FlexSolid      Flexibility = "solid"
	FlexStiff      Flexibility = "stiff"
	FlexFlexible   Flexibility = "flexible"
	FlexWhippy     Flexibility = "whippy"
	FlexSupple     Flexibility = "supple"
)

var Flexibilities = []Flexibility{
	FlexRigid, FlexUnyielding, FlexSolid, FlexStiff, FlexFlexible, FlexWhippy, FlexSupple,
}

func ParseFlexibility(s string) (Flexibility, error) {
	return parseEnum("flexibility", s, Flexibilities, strings.EqualFold)
}

func (f Flexibility) Valid() bool { return contains(Flexibilities, f) }

// Condition is the physical state of a wand.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
	ConditionDamaged     Condition = "damaged"
)

var Conditions = []Condition{ConditionNew, ConditionUsed, ConditionRefurbished, ConditionDamaged}

func ParseCondition(s string) (Condition, error) {
	return parseEnum("condition", s, Conditions, strings.EqualFold)
}

func (c Condition) Valid() bool { return contains(Conditions, c) }

// WandStatus is the sales state of a wand.
type WandStatus string

const (
	StatusInStock   WandStatus = "in_stock"
	StatusSold      WandStatus = "sold"
	StatusReserved  WandStatus = "reserved"
	StatusDefective WandStatus = "defective"
)

var WandStatuses = []WandStatus{StatusInStock, StatusSold, StatusReserved, StatusDefective}

func ParseWandStatus(s string) (WandStatus, error) {
	return parseEnum("status", s, WandStatuses, strings.EqualFold)
}

func (s WandStatus) Valid() bool { return contains(WandStatuses, s) }

type BloodStatus string

const (
	BloodPure    BloodStatus = "pure"
	BloodHalf    BloodStatus = "half"
	BloodMuggle  BloodStatus = "muggle"
	BloodUnknown BloodStatus = "unknown"
)

var BloodStatuses = []BloodStatus{BloodPure, BloodHalf, BloodMuggle, BloodUnknown}

func ParseBloodStatus(s string) (BloodStatus, error) {
	return parseEnum("blood status", s, BloodStatuses, strings.EqualFold)
}

func (b BloodStatus) Valid() bool { return contains(BloodStatuses, b) }

// House keeps its capitalised form in storage.
type House string

const (
	HouseGryffindor House = "Gryffindor"
	HouseHufflepuff House = "Hufflepuff"
	HouseRavenclaw  House = "Ravenclaw"
	HouseSlytherin  House = "Slytherin"
	HouseOther      House = "Other"
)

var Houses = []House{HouseGryffindor, HouseHufflepuff, HouseRavenclaw, HouseSlytherin, HouseOther}

func ParseHouse(s string) (House, error) {
	return parseEnum("house", s, Houses, strings.EqualFold)
}

func (h House) Valid() bool { return contains(Houses, h) }

// PaymentMethod is stored lower-cased.
type PaymentMethod string

const (
	PaymentGalleons  PaymentMethod = "galleons"
	PaymentGringotts PaymentMethod = "gringotts"
	PaymentCredit    PaymentMethod = "credit"
)

var PaymentMethods = []PaymentMethod{PaymentGalleons, PaymentGringotts, PaymentCredit}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	return parseEnum("payment method", s, PaymentMethods, strings.EqualFold)
}

func (p PaymentMethod) Valid() bool { return contains(PaymentMethods, p) }

func parseEnum[T ~string](name, s string, set []T, eq func(a, b string) bool) (T, error) {
	s = strings.TrimSpace(s)
	for _, v := range set {
		if eq(string(v), s) {
			return v, nil
		}
	}
	return "", &EnumError{Type: name, Value: s}
}

func contains[T ~string](set []T, v T) bool {
	for _, m := range set {
		if m == v {
			return true
		}
	}
	return false
}
