package console

import (
	"unicode"
	"unicode/utf8"
)

// The legacy gateway mixes PascalCase and camelCase field names between
// endpoints. Records are reconciled to camelCase once, at the response
// boundary, so everything past the client sees one spelling.
var keyAliases = map[string]string{
	"TicketId":         "ticketId",
	"CategoryId":       "categoryId",
	"ServiceId":        "serviceId",
	"SubServiceId":     "subServiceId",
	"IssueTitle":       "issueTitle",
	"IssueDescription": "issueDescription",
	"MediaFilePath":    "mediaFilePath",
	"MediaFilePaths":   "mediaFilePaths",
	"StatusId":         "statusId",
	"StatusName":       "statusName",
	"RequesterId":      "requesterId",
	"FirstName":        "firstName",
	"LastName":         "lastName",
	"CreatedDate":      "createdDate",
	"Comments":         "comments",
	"CommentId":        "commentId",
	"CommentText":      "commentText",
	"AuthorId":         "authorId",
	"AuthorName":       "authorName",
	"Reactions":        "reactions",
	"ReactionId":       "reactionId",
	"UserId":           "userId",
	"EmojiCode":        "emojiCode",
	"EmployeeId":       "employeeId",
	"IdNumber":         "idNumber",
	"Telephone":        "telephone",
	"OfficialEmail":    "officialEmail",
	"Country":          "country",
	"Region":           "region",
	"City":             "city",
	"Address":          "address",
	"BankName":         "bankName",
	"IbanNumber":       "ibanNumber",
	"DateOfBirth":      "dateOfBirth",
	"IdExpiryDate":     "idExpiryDate",
	"TotalRecords":     "totalRecords",
	"TotalCount":       "totalCount",
}

// canonicalKey maps a gateway field name to its camelCase spelling.
// Unknown keys are passed through with the first rune lowered.
func canonicalKey(key string) string {
	if alias, ok := keyAliases[key]; ok {
		return alias
	}

	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return key
	}
	return string(unicode.ToLower(r)) + key[size:]
}

// canonicalize rewrites every map key in the value to camelCase,
// descending through nested objects and arrays.
func canonicalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[canonicalKey(k)] = canonicalize(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = canonicalize(inner)
		}
		return out
	default:
		return v
	}
}

// CanonicalizeRecord normalizes a single record's field names.
func CanonicalizeRecord(rec map[string]any) map[string]any {
	normalized, _ := canonicalize(rec).(map[string]any)
	return normalized
}
