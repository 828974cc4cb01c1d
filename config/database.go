package config

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone_number TEXT NOT NULL,
		birthday TEXT NOT NULL,
		extra_data TEXT NULL
	)`

const mysqlSchema = `
	CREATE TABLE IF NOT EXISTS contacts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone_number VARCHAR(64) NOT NULL,
		birthday CHAR(10) NOT NULL,
		extra_data TEXT NULL
	)`

func (c *DatabaseConfig) GetDSN() string {
	if c.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&multiStatements=true",
			c.User, c.Password, c.Server, c.Database)
	}
	return c.Path
}

// ConnectDatabase abre a conexão com o banco configurado (sqlite ou mysql),
// ajusta o pool e garante que o esquema de contatos exista.
func ConnectDatabase(c *DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(c.Driver, c.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Configurar o pool de conexões
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Testar a conexão
	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	if err := EnsureSchema(db, c.Driver); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema cria a tabela de contatos caso ainda não exista. O esquema é
// declarado explicitamente por driver, sem reflexão sobre os modelos.
func EnsureSchema(db *sql.DB, driver string) error {
	schema := sqliteSchema
	if driver == "mysql" {
		schema = mysqlSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("error creating contacts schema: %v", err)
	}
	return nil
}
