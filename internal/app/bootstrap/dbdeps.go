// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/internhub/internal/app/store/audit"
	"github.com/dalemusser/internhub/internal/app/store/ledger"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the back-end dependencies: the in-memory ledgers that are
// the system of record, and the optional MongoDB connection behind the
// audit trail. The Mongo fields are nil when mongo_uri is blank.
type DBDeps struct {
	Ledgers *ledger.Set

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	AuditStore    *audit.Store
}
