package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// tree shape
	TreeInfo                Code = 1000
	TreeMissingChild        Code = 1001
	TreeForBothInits        Code = 1002
	TreeUnresolvedChameleon Code = 1003
	TreeDuplicateDefault    Code = 1004
	TreeEmptyVars           Code = 1005
	TreeEmptyDocComment     Code = 1006

	// names
	NameInfo           Code = 2000
	NameInvalidIdent   Code = 2001
	NameReservedWord   Code = 2002
	NameNotNFC         Code = 2003
	NameUndefinedLabel Code = 2004
	NameDuplicateLabel Code = 2005

	// input documents
	IOInfo          Code = 3000
	IOLoadFileError Code = 3001
	IODecodeError   Code = 3002
	IOReparseError  Code = 3003
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	TreeInfo:                "Tree information",
	TreeMissingChild:        "Required child node is missing",
	TreeForBothInits:        "For statement has both an initializer expression and declarations",
	TreeUnresolvedChameleon: "Placeholder expression was never resolved",
	TreeDuplicateDefault:    "Switch has more than one default member",
	TreeEmptyVars:           "Variable declaration list is empty",
	TreeEmptyDocComment:     "Documentation comment has no tags",
	NameInfo:                "Name information",
	NameInvalidIdent:        "Name is not a valid identifier",
	NameReservedWord:        "Reserved word used as a binding",
	NameNotNFC:              "Identifier is not in Unicode normalization form C",
	NameUndefinedLabel:      "Jump to a label that does not enclose it",
	NameDuplicateLabel:      "Label shadows an enclosing label with the same name",
	IOInfo:                  "I/O information",
	IOLoadFileError:         "Failed to load input document",
	IODecodeError:           "Failed to decode input document",
	IOReparseError:          "Emitted code does not re-parse",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 2000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 1000:
		return fmt.Sprintf("TRE%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
