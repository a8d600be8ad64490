package models

// IDMap is the row shape of the id_maps table.
type IDMap struct {
	LocalID          int64  `db:"local_id"`
	LocalEntityName  string `db:"local_entity_name"`
	RemoteEntityGUID string `db:"remote_entity_guid"`
	RemoteEntityName string `db:"remote_entity_name"`
	Deleted          bool   `db:"deleted"`
	AuditFields
}
