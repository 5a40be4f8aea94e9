// Package testdb provides throwaway catalog databases for tests.
//
// Each call to Open returns a private in-memory SQLite database whose schema
// is created by the embedded goose migrations, so store, service and router
// tests can exercise real SQL without any external service:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.Open(t)
//	    kb := testdb.InsertKeyboard(t, db, testdb.Keyboard{Name: "Apple Magic"})
//	    testdb.InsertDetail(t, db, kb.ID, "black")
//	    ...
//	}
//
// The database is closed automatically through t.Cleanup.
package testdb
