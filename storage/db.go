package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var db *sql.DB

func InitDB() *sql.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	connStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		user, password, dbname, host, port)

	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	if err := ensureSchema(db); err != nil {
		log.Fatal("Failed to create tables:", err)
	}

	return db
}

func GetDB() *sql.DB {
	return db
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS measurement_records (
			id TEXT PRIMARY KEY,
			record_date TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT 'UAE',
			client_name TEXT NOT NULL DEFAULT '',
			areas JSONB NOT NULL DEFAULT '[]',
			grand_total NUMERIC NOT NULL DEFAULT 0,
			advance TEXT NOT NULL DEFAULT '0',
			balance NUMERIC NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			suspended BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS session (
			user_id INT NOT NULL,
			session_id TEXT PRIMARY KEY,
			host_name TEXT NOT NULL DEFAULT '',
			ip_address TEXT NOT NULL DEFAULT '',
			timestp TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("schema setup failed: %w", err)
		}
	}
	return nil
}

// SaveRecord inserts a new measurement record. Areas go in as one jsonb
// document so the stored shape matches what the mobile client exports.
func SaveRecord(db *sql.DB, rec models.SavedRecord) error {
	areasJSON, err := json.Marshal(rec.Areas)
	if err != nil {
		return fmt.Errorf("failed to encode areas: %w", err)
	}

	ctx, cancel := utils.GetDefaultQueryContext(context.Background())
	defer cancel()

	_, err = db.ExecContext(ctx, `
		INSERT INTO measurement_records (id, record_date, country, client_name, areas, grand_total, advance, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Date, rec.Country, rec.ClientName, areasJSON,
		float64(rec.GrandTotal), string(rec.Advance), float64(rec.Balance))
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// UpdateRecord replaces a record wholesale (edit-and-resave lifecycle).
func UpdateRecord(db *sql.DB, rec models.SavedRecord) error {
	areasJSON, err := json.Marshal(rec.Areas)
	if err != nil {
		return fmt.Errorf("failed to encode areas: %w", err)
	}

	ctx, cancel := utils.GetDefaultQueryContext(context.Background())
	defer cancel()

	res, err := db.ExecContext(ctx, `
		UPDATE measurement_records
		SET record_date=$2, country=$3, client_name=$4, areas=$5, grand_total=$6, advance=$7, balance=$8
		WHERE id=$1`,
		rec.ID, rec.Date, rec.Country, rec.ClientName, areasJSON,
		float64(rec.GrandTotal), string(rec.Advance), float64(rec.Balance))
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanAreas(areasJSON []byte, rec *models.SavedRecord) error {
	if len(areasJSON) == 0 {
		rec.Areas = []models.AreaMeasurement{}
		return nil
	}
	if err := json.Unmarshal(areasJSON, &rec.Areas); err != nil {
		return models.ErrUnreadable
	}
	return nil
}

// GetRecord fetches one record by id. sql.ErrNoRows passes through for the
// handler's 404; a corrupt areas document surfaces as models.ErrUnreadable.
func GetRecord(db *sql.DB, id string) (models.SavedRecord, error) {
	ctx, cancel := utils.GetFastQueryContext(context.Background())
	defer cancel()

	var rec models.SavedRecord
	var areasJSON []byte
	var grandTotal, balance float64
	var advance string
	err := db.QueryRowContext(ctx, `
		SELECT id, record_date, country, client_name, areas, grand_total, advance, balance
		FROM measurement_records WHERE id=$1`, id).
		Scan(&rec.ID, &rec.Date, &rec.Country, &rec.ClientName, &areasJSON, &grandTotal, &advance, &balance)
	if err != nil {
		return rec, err
	}
	rec.GrandTotal = models.FlexNumber(grandTotal)
	rec.Advance = models.FlexString(advance)
	rec.Balance = models.FlexNumber(balance)
	if err := scanAreas(areasJSON, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// ListRecords returns every record, newest first. Ids are millisecond
// timestamps so the numeric order is creation order.
func ListRecords(db *sql.DB) ([]models.SavedRecord, error) {
	ctx, cancel := utils.GetDefaultQueryContext(context.Background())
	defer cancel()

	rows, err := db.QueryContext(ctx, `
		SELECT id, record_date, country, client_name, areas, grand_total, advance, balance
		FROM measurement_records ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := []models.SavedRecord{}
	for rows.Next() {
		var rec models.SavedRecord
		var areasJSON []byte
		var grandTotal, balance float64
		var advance string
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Country, &rec.ClientName, &areasJSON, &grandTotal, &advance, &balance); err != nil {
			return nil, err
		}
		rec.GrandTotal = models.FlexNumber(grandTotal)
		rec.Advance = models.FlexString(advance)
		rec.Balance = models.FlexNumber(balance)
		if err := scanAreas(areasJSON, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteRecord removes exactly the record with the given id.
func DeleteRecord(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM measurement_records WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SaveSession stores a login session. Single-session-per-user policy:
// older sessions for the same user are cleared first.
func SaveSession(db *sql.DB, session *models.Session) error {
	if _, err := db.Exec(`DELETE FROM session WHERE user_id = $1`, session.UserID); err != nil {
		return fmt.Errorf("failed to clear old sessions: %v", err)
	}
	_, err := db.Exec(`
		INSERT INTO session (user_id, session_id, host_name, ip_address, timestp, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		session.UserID, session.SessionID, session.HostName, session.IPAddress,
		session.Timestamp, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %v", err)
	}
	return nil
}

// GetUserByEmail looks a user up for the credential check at login.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	var user models.User
	err := db.QueryRow(`SELECT id, email, password, full_name, suspended FROM users WHERE LOWER(email) = LOWER($1)`, email).
		Scan(&user.ID, &user.Email, &user.Password, &user.FullName, &user.Suspended)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to query user: %v", err)
	}
	return &user, nil
}

// GetUserBySessionID resolves a session token back to its user.
func GetUserBySessionID(db *sql.DB, sessionID string) (*models.User, error) {
	var user models.User
	err := db.QueryRow(`
		SELECT u.id, u.email, u.full_name, u.suspended
		FROM session s JOIN users u ON s.user_id = u.id
		WHERE s.session_id = $1 AND s.expires_at > NOW()`, sessionID).
		Scan(&user.ID, &user.Email, &user.FullName, &user.Suspended)
	if err != nil {
		return nil, err
	}
	if user.Suspended {
		return nil, fmt.Errorf("account suspended")
	}
	return &user, nil
}

func CleanupExpiredSessions(db *sql.DB) error {
	threshold := time.Now().Add(-24 * time.Hour)
	_, err := db.Exec(`DELETE FROM session WHERE expires_at < $1`, threshold)
	return err
}
