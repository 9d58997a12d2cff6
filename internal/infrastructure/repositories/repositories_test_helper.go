package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL,
		reset_token TEXT,
		reset_token_expires_at DATETIME,
		failed_login_attempts INTEGER NOT NULL DEFAULT 0,
		locked_until DATETIME,
		last_login_at DATETIME,
		last_login_ip TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		provider TEXT NOT NULL,
		provider_account_id TEXT NOT NULL,
		refresh_token TEXT,
		access_token TEXT,
		expires_at INTEGER,
		token_type TEXT,
		scope TEXT,
		id_token TEXT,
		created_at DATETIME,
		UNIQUE (provider, provider_account_id)
	);`)
}

func createSessionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		session_token TEXT NOT NULL UNIQUE,
		ip_address TEXT,
		user_agent TEXT,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createVerificationTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_tokens (
		id TEXT PRIMARY KEY,
		identifier TEXT NOT NULL,
		token TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		UNIQUE (identifier, token)
	);`)
}

func createWorkerProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE worker_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		date_of_birth DATETIME,
		mobile TEXT,
		address TEXT,
		suburb TEXT,
		state TEXT,
		postcode TEXT,
		languages TEXT,
		services TEXT,
		support_worker_categories TEXT,
		bio TEXT,
		experience TEXT,
		qualifications TEXT,
		photos TEXT,
		verification_checklist TEXT,
		submitted_documents TEXT,
		verification_status TEXT NOT NULL,
		submitted_at DATETIME,
		reviewed_at DATETIME,
		approved_at DATETIME,
		rejected_at DATETIME,
		rejection_reason TEXT,
		reviewed_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVerificationRequirementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_requirements (
		id TEXT PRIMARY KEY,
		worker_profile_id TEXT NOT NULL,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		document_category TEXT NOT NULL,
		is_required BOOLEAN NOT NULL DEFAULT 1,
		status TEXT NOT NULL,
		document_url TEXT,
		uploaded_at DATETIME,
		reviewed_at DATETIME,
		reviewed_by TEXT,
		approved_at DATETIME,
		rejected_at DATETIME,
		expires_at DATETIME,
		notes TEXT,
		rejection_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createClientProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE client_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		mobile TEXT,
		suburb TEXT,
		state TEXT,
		postcode TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCoordinatorProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE coordinator_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		mobile TEXT,
		organization TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		action TEXT NOT NULL,
		ip_address TEXT,
		user_agent TEXT,
		metadata TEXT,
		created_at DATETIME
	);`)
}
