package badger

import (
	"fmt"

	"github.com/poiesic/newswire/core"
)

// Key prefix for article records. The trailing colon keeps the iterator
// prefix unambiguous should other key families be added later.
const articleRecordPrefix = "artrec:"

// makeArticleKey generates a key for an article by ID.
func makeArticleKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s%d", articleRecordPrefix, id))
}
