package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitbooker/internal/config"
	"fitbooker/internal/lib/istime"
	"fitbooker/internal/models"
	"fitbooker/internal/storage"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			pass_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS classes (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			date_time TIMESTAMPTZ NOT NULL,
			instructor TEXT NOT NULL,
			available_slots INT NOT NULL CHECK (available_slots >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			class_id BIGINT NOT NULL REFERENCES classes (id) ON DELETE CASCADE,
			client_name TEXT NOT NULL,
			client_email TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, class_id)
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings (user_id);
		CREATE INDEX IF NOT EXISTS idx_classes_date_time ON classes (date_time);`

	_, err := s.DB.Exec(schema)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveUser(name, email, passHash string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, pass_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	user := models.User{
		Name:     name,
		Email:    email,
		PassHash: passHash,
	}

	err := s.DB.QueryRow(query, name, email, passHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, storage.ErrUserExists
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &user, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, pass_hash, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PassHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (s *Storage) GetUserByID(id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, pass_hash, created_at
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PassHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (s *Storage) CreateClass(name string, dateTime time.Time, instructor string, slots int) (int64, error) {
	query := `
		INSERT INTO classes (name, date_time, instructor, available_slots)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, name, dateTime, instructor, slots).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create class: %w", err)
	}

	return id, nil
}

func (s *Storage) GetAllClasses() ([]models.FitnessClass, error) {
	query := `
		SELECT id, name, date_time, instructor, available_slots
		FROM classes
		ORDER BY date_time ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get classes: %w", err)
	}
	defer rows.Close()

	var classes []models.FitnessClass
	for rows.Next() {
		var class models.FitnessClass
		err = rows.Scan(
			&class.ID,
			&class.Name,
			&class.DateTime,
			&class.Instructor,
			&class.AvailableSlots,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		class.DateTime = istime.Normalize(class.DateTime)
		classes = append(classes, class)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classes: %w", err)
	}

	return classes, nil
}

// CreateBooking reserves one slot of a class for a user. The class row is
// locked for the whole check-then-write sequence, so concurrent reservations
// against the same class are linearized: the slot counter can never go
// negative and a (user, class) pair can never hold two bookings. The unique
// constraint on (user_id, class_id) backstops the duplicate pre-check.
func (s *Storage) CreateBooking(userID, classID int64, clientName, clientEmail string) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dateTime time.Time
	var availableSlots int
	classQuery := `
		SELECT date_time, available_slots
		FROM classes
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRow(classQuery, classID).Scan(&dateTime, &availableSlots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	// Stored times are already IST; normalize anyway so the comparison is
	// always against IST now.
	if istime.IsPast(dateTime) {
		return nil, storage.ErrClassInPast
	}

	if availableSlots <= 0 {
		return nil, storage.ErrNoSlots
	}

	var alreadyBooked bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND class_id = $2
		)`

	err = tx.QueryRow(checkQuery, userID, classID).Scan(&alreadyBooked)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}

	if alreadyBooked {
		return nil, storage.ErrAlreadyBooked
	}

	updateQuery := `
		UPDATE classes
		SET available_slots = available_slots - 1
		WHERE id = $1 AND available_slots > 0`

	res, err := tx.Exec(updateQuery, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to decrement slots: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to decrement slots: %w", err)
	}
	if affected == 0 {
		return nil, storage.ErrNoSlots
	}

	booking := models.Booking{
		UserID:      userID,
		ClassID:     classID,
		ClientName:  clientName,
		ClientEmail: clientEmail,
	}

	insertQuery := `
		INSERT INTO bookings (user_id, class_id, client_name, client_email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err = tx.QueryRow(insertQuery, userID, classID, clientName, clientEmail).Scan(
		&booking.ID,
		&booking.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, storage.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	booking.CreatedAt = istime.Normalize(booking.CreatedAt)

	return &booking, nil
}

func (s *Storage) ListBookingsForUser(userID int64) ([]models.Booking, error) {
	query := `
		SELECT id, user_id, class_id, client_name, client_email, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ClassID,
			&booking.ClientName,
			&booking.ClientEmail,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		booking.CreatedAt = istime.Normalize(booking.CreatedAt)
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
