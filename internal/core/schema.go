package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table identifies one of the eleven schema tables. Values outside this
// enumeration never reach the database — see ParseTable.
type Table string

const (
	TableProduct       Table = "product"
	TableWarehouse     Table = "warehouse"
	TableInventory     Table = "inventory"
	TableUser          Table = "app_user"
	TableClient        Table = "client"
	TableStore         Table = "store"
	TablePurchaseOrder Table = "purchase_order"
	TablePurchaseItem  Table = "purchase_item"
	TableSaleOrder     Table = "sale_order"
	TableSaleItem      Table = "sale_item"
	TablePayment       Table = "payment"
)

// tableDef declares one table: its DDL, its foreign-key parents, and the
// primary-key columns used for deterministic reads. Creation order is derived
// from dependsOn by topological sort; truncation order is the reverse. Adding
// a table means adding one entry here.
type tableDef struct {
	name      Table
	dependsOn []Table
	pkColumns []string
	ddl       string
}

var tableDefs = []tableDef{
	{
		name:      TableProduct,
		pkColumns: []string{"product_id"},
		ddl: `CREATE TABLE IF NOT EXISTS product (
			product_id   SERIAL PRIMARY KEY,
			product_name VARCHAR(100) NOT NULL,
			description  TEXT,
			weight       DECIMAL(8,2) NOT NULL CHECK (weight >= 0),
			unit_cost    DECIMAL(10,2) NOT NULL CHECK (unit_cost >= 0),
			unit_price   DECIMAL(10,2) NOT NULL CHECK (unit_price >= 0)
		)`,
	},
	{
		name:      TableWarehouse,
		pkColumns: []string{"warehouse_id"},
		ddl: `CREATE TABLE IF NOT EXISTS warehouse (
			warehouse_id       SERIAL PRIMARY KEY,
			warehouse_name     VARCHAR(100) NOT NULL,
			warehouse_location VARCHAR(200)
		)`,
	},
	{
		name:      TableInventory,
		dependsOn: []Table{TableWarehouse, TableProduct},
		pkColumns: []string{"warehouse_id", "product_id"},
		ddl: `CREATE TABLE IF NOT EXISTS inventory (
			warehouse_id     INT NOT NULL,
			product_id       INT NOT NULL,
			quantity_on_hand INT DEFAULT 0 CHECK (quantity_on_hand >= 0),
			reorder_level    INT DEFAULT 0 CHECK (reorder_level >= 0),
			PRIMARY KEY (warehouse_id, product_id),
			FOREIGN KEY (warehouse_id) REFERENCES warehouse(warehouse_id),
			FOREIGN KEY (product_id) REFERENCES product(product_id)
		)`,
	},
	{
		name:      TableUser,
		pkColumns: []string{"user_id"},
		ddl: `CREATE TABLE IF NOT EXISTS app_user (
			user_id       SERIAL PRIMARY KEY,
			username      VARCHAR(50) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			full_name     VARCHAR(100) NOT NULL,
			user_role     VARCHAR(50) NOT NULL
		)`,
	},
	{
		name:      TableClient,
		pkColumns: []string{"client_id"},
		ddl: `CREATE TABLE IF NOT EXISTS client (
			client_id   SERIAL PRIMARY KEY,
			client_name VARCHAR(100) NOT NULL,
			email       VARCHAR(100),
			phone       VARCHAR(20)
		)`,
	},
	{
		name:      TableStore,
		pkColumns: []string{"store_id"},
		ddl: `CREATE TABLE IF NOT EXISTS store (
			store_id       SERIAL PRIMARY KEY,
			store_name     VARCHAR(100) NOT NULL,
			store_location VARCHAR(200)
		)`,
	},
	{
		name:      TablePurchaseOrder,
		dependsOn: []Table{TableWarehouse, TableUser},
		pkColumns: []string{"purchase_id"},
		ddl: `CREATE TABLE IF NOT EXISTS purchase_order (
			purchase_id   SERIAL PRIMARY KEY,
			purchase_date DATE NOT NULL,
			total_cost    DECIMAL(12,2) NOT NULL CHECK (total_cost >= 0),
			warehouse_id  INT NOT NULL,
			user_id       INT NOT NULL,
			FOREIGN KEY (warehouse_id) REFERENCES warehouse(warehouse_id),
			FOREIGN KEY (user_id) REFERENCES app_user(user_id)
		)`,
	},
	{
		name:      TablePurchaseItem,
		dependsOn: []Table{TablePurchaseOrder, TableProduct},
		pkColumns: []string{"purchase_id", "product_id"},
		ddl: `CREATE TABLE IF NOT EXISTS purchase_item (
			purchase_id INT NOT NULL,
			product_id  INT NOT NULL,
			unit_cost   DECIMAL(10,2) NOT NULL CHECK (unit_cost >= 0),
			quantity    INT NOT NULL CHECK (quantity > 0),
			PRIMARY KEY (purchase_id, product_id),
			FOREIGN KEY (purchase_id) REFERENCES purchase_order(purchase_id),
			FOREIGN KEY (product_id) REFERENCES product(product_id)
		)`,
	},
	{
		name:      TableSaleOrder,
		dependsOn: []Table{TableClient, TableStore, TableUser},
		pkColumns: []string{"sale_id"},
		ddl: `CREATE TABLE IF NOT EXISTS sale_order (
			sale_id      SERIAL PRIMARY KEY,
			sale_date    DATE NOT NULL,
			total_amount DECIMAL(12,2) NOT NULL CHECK (total_amount >= 0),
			client_id    INT NOT NULL,
			store_id     INT NOT NULL,
			user_id      INT NOT NULL,
			FOREIGN KEY (client_id) REFERENCES client(client_id),
			FOREIGN KEY (store_id) REFERENCES store(store_id),
			FOREIGN KEY (user_id) REFERENCES app_user(user_id)
		)`,
	},
	{
		name:      TableSaleItem,
		dependsOn: []Table{TableSaleOrder, TableProduct},
		pkColumns: []string{"sale_id", "product_id"},
		ddl: `CREATE TABLE IF NOT EXISTS sale_item (
			sale_id    INT NOT NULL,
			product_id INT NOT NULL,
			sale_price DECIMAL(10,2) NOT NULL CHECK (sale_price >= 0),
			quantity   INT NOT NULL CHECK (quantity > 0),
			PRIMARY KEY (sale_id, product_id),
			FOREIGN KEY (sale_id) REFERENCES sale_order(sale_id),
			FOREIGN KEY (product_id) REFERENCES product(product_id)
		)`,
	},
	{
		name:      TablePayment,
		dependsOn: []Table{TableSaleOrder},
		pkColumns: []string{"payment_id"},
		ddl: `CREATE TABLE IF NOT EXISTS payment (
			payment_id       SERIAL PRIMARY KEY,
			payment_date     DATE NOT NULL,
			amount           DECIMAL(12,2) NOT NULL CHECK (amount >= 0),
			payment_method   VARCHAR(50),
			reference_number VARCHAR(100),
			sale_id          INT NOT NULL UNIQUE,
			FOREIGN KEY (sale_id) REFERENCES sale_order(sale_id)
		)`,
	},
}

// ParseTable validates a caller-supplied table name against the closed
// enumeration. Anything else yields *UnknownTableError without touching
// the database.
func ParseTable(name string) (Table, error) {
	for _, def := range tableDefs {
		if string(def.name) == name {
			return def.name, nil
		}
	}
	return "", &UnknownTableError{Name: name}
}

// AllTables returns the eleven table names in creation order.
func AllTables() []Table {
	return CreationOrder()
}

func defFor(t Table) tableDef {
	for _, def := range tableDefs {
		if def.name == t {
			return def
		}
	}
	// Unreachable for values produced by ParseTable.
	panic(fmt.Sprintf("no definition for table %s", t))
}

// CreationOrder returns the tables parents-first, derived from the dependsOn
// graph by a stable topological sort (Kahn's algorithm, declaration order
// breaking ties).
func CreationOrder() []Table {
	indegree := make(map[Table]int, len(tableDefs))
	for _, def := range tableDefs {
		indegree[def.name] = len(def.dependsOn)
	}

	order := make([]Table, 0, len(tableDefs))
	done := make(map[Table]bool, len(tableDefs))
	for len(order) < len(tableDefs) {
		progressed := false
		for _, def := range tableDefs {
			if done[def.name] || indegree[def.name] != 0 {
				continue
			}
			order = append(order, def.name)
			done[def.name] = true
			progressed = true
			for _, other := range tableDefs {
				for _, dep := range other.dependsOn {
					if dep == def.name {
						indegree[other.name]--
					}
				}
			}
		}
		if !progressed {
			panic("cycle in table dependency graph")
		}
	}
	return order
}

// TruncationOrder returns the tables children-first, the safe order for
// truncation and deletion.
func TruncationOrder() []Table {
	creation := CreationOrder()
	order := make([]Table, len(creation))
	for i, t := range creation {
		order[len(creation)-1-i] = t
	}
	return order
}

// SchemaManager owns the DDL for the eleven tables.
type SchemaManager struct {
	pool *pgxpool.Pool
}

func NewSchemaManager(pool *pgxpool.Pool) *SchemaManager {
	return &SchemaManager{pool: pool}
}

// EnsureSchema creates every table that does not yet exist, parents before
// children, in a single transaction. Re-invocation against a complete schema
// is a no-op. A rejected statement rolls everything back and surfaces as
// *SchemaError.
func (m *SchemaManager) EnsureSchema(ctx context.Context) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer tx.Rollback(ctx)

	for _, t := range CreationOrder() {
		if _, err := tx.Exec(ctx, defFor(t).ddl); err != nil {
			return &SchemaError{Table: string(t), Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &SchemaError{Table: "", Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}
