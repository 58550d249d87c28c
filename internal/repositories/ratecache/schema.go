package ratecache

const schemaSQL = `
CREATE TABLE IF NOT EXISTS rate_cache (
    base_currency   TEXT PRIMARY KEY,
    payload         TEXT NOT NULL,
    fetched_at      TEXT NOT NULL
);
`
