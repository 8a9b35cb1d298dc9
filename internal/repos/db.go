package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// :memory: gives every pooled connection its own database
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo catalog if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog (read once at startup, never written by the app)
CREATE TABLE IF NOT EXISTS listings(
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  number TEXT NOT NULL,
  region TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  seller TEXT NOT NULL,
  phone TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  featured INTEGER NULL,
  image TEXT NULL,
  date_added TEXT NOT NULL,
  views INTEGER NULL CHECK (views IS NULL OR views >= 0),
  category TEXT NULL CHECK (category IS NULL OR category IN ('premium','exclusive','standard'))
);
CREATE INDEX IF NOT EXISTS idx_listings_region ON listings(region);

-- Session-scoped key/value storage (favorites live under key 'favorites')
CREATE TABLE IF NOT EXISTS kv_store(
  session_id TEXT NOT NULL,
  key TEXT NOT NULL,
  value TEXT NOT NULL,
  updated_at TEXT,
  PRIMARY KEY(session_id, key)
);

-- Submitted drafts awaiting moderation; never merged into listings
CREATE TABLE IF NOT EXISTS submissions(
  id TEXT PRIMARY KEY,
  session_id TEXT,
  number TEXT NOT NULL,
  region TEXT NOT NULL,
  price INTEGER NOT NULL,
  seller TEXT NOT NULL,
  phone TEXT NOT NULL,
  description TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM listings`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo listings")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO listings(id,number,region,price,seller,phone,description,featured,image,date_added,views,category) VALUES
	  ('1','А777АА','77',50000,'Иван Петров','+7 (999) 123-45-67','Красивый номер на авто премиум класса',1,'/static/img/plate-a777aa.svg','2024-01-15',245,'premium'),
	  ('2','О001ОО','177',120000,'Мария Сидорова','+7 (999) 234-56-78','Эксклюзивный номер для коллекционера',NULL,'/static/img/plate-o001oo.svg','2024-01-14',189,'exclusive'),
	  ('3','Н333НН','199',35000,'Алексей Иванов','+7 (999) 345-67-89','Хороший номер по доступной цене',NULL,NULL,'2024-01-13',156,'standard'),
	  ('4','В555ВВ','50',80000,'Дмитрий Козлов','+7 (999) 456-78-90','Зеркальный номер, все документы готовы',1,NULL,'2024-01-12',NULL,'premium'),
	  ('5','К100КК','777',65000,'Ольга Смирнова','+7 (999) 567-89-01','Круглые цифры, один владелец',NULL,NULL,'2024-01-11',98,NULL),
	  ('6','М888ММ','78',150000,'Сергей Волков','+7 (999) 678-90-12','Три восьмерки, номер на удачу',1,'/static/img/plate-m888mm.svg','2024-01-10',312,'exclusive')`)

	return tx.Commit()
}
