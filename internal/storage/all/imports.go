// Package all registers every storage sink with the storage factory. The
// binary imports it blank; config selects which sink actually runs.
package all

import (
	_ "dwcetl/internal/storage/csvout"
	_ "dwcetl/internal/storage/postgres"
	_ "dwcetl/internal/storage/sqlite"
)
