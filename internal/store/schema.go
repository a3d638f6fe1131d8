package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS accounts (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    type        TEXT NOT NULL,
    balance     TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS calendar_events (
    id                  TEXT PRIMARY KEY,
    title               TEXT NOT NULL,
    amount              TEXT NOT NULL,
    date                TEXT NOT NULL,
    kind                TEXT NOT NULL,
    paid                INTEGER NOT NULL DEFAULT 0,
    deleted             INTEGER NOT NULL DEFAULT 0,
    recurring           INTEGER NOT NULL DEFAULT 0,
    frequency           TEXT NOT NULL DEFAULT '',
    parent_recurring_id TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS buckets (
    id        TEXT PRIMARY KEY,
    name      TEXT NOT NULL,
    spend_limit TEXT NOT NULL,
    variable  INTEGER NOT NULL DEFAULT 0,
    core      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transactions (
    id            TEXT PRIMARY KEY,
    amount        TEXT NOT NULL,
    category      TEXT NOT NULL DEFAULT '',
    status        TEXT NOT NULL,
    date          TEXT NOT NULL,
    pay_period_id TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_events_parent ON calendar_events(parent_recurring_id);
CREATE INDEX IF NOT EXISTS idx_transactions_period ON transactions(pay_period_id);
`
