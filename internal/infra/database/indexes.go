package database

import "github.com/xavierca1/evangelism-crm/internal/entity"

// UniqueIndexes are the per-collection unique fields every store enforces.
var UniqueIndexes = map[string][]string{
	entity.CollectionUsers: {"email"},
}

// lookupFields are indexed where the backend supports secondary indexes.
var lookupFields = []string{"client_id", "convert_id"}
