package repositories

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UnitOfWork collects the pending changes of one request. It is not safe for
// concurrent use; build one per request and share it between the repositories
// of that request.
type UnitOfWork struct {
	db      *gorm.DB
	added   []any
	deleted []any
	tracked []trackedEntity
}

// trackedEntity pairs a loaded entity with a copy of its values at load time.
type trackedEntity struct {
	entity   any
	original reflect.Value
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) DB(ctx context.Context) *gorm.DB {
	return u.db.WithContext(ctx)
}

func (u *UnitOfWork) track(entity any) {
	for _, t := range u.tracked {
		if t.entity == entity {
			return
		}
	}
	original := reflect.New(reflect.TypeOf(entity).Elem()).Elem()
	original.Set(reflect.ValueOf(entity).Elem())
	u.tracked = append(u.tracked, trackedEntity{entity: entity, original: original})
}

// changedFields lists the column fields of a tracked entity that differ from
// their loaded values. Associations and the primary key are never included.
func (t trackedEntity) changedFields() []string {
	current := reflect.ValueOf(t.entity).Elem()
	typ := current.Type()
	var fields []string
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() || f.Name == "ID" || f.Name == "UpdatedAt" || isAssociation(f.Type) {
			continue
		}
		if !sameValue(current.Field(i), t.original.Field(i)) {
			fields = append(fields, f.Name)
		}
	}
	if len(fields) > 0 {
		if _, ok := typ.FieldByName("UpdatedAt"); ok {
			fields = append(fields, "UpdatedAt")
		}
	}
	return fields
}

// sameValue prefers a type's own Equal method, so decimals and times compare by
// value rather than representation.
func sameValue(a, b reflect.Value) bool {
	if eq := a.MethodByName("Equal"); eq.IsValid() {
		mt := eq.Type()
		if mt.NumIn() == 1 && mt.In(0) == b.Type() && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool {
			return eq.Call([]reflect.Value{b})[0].Bool()
		}
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

func isAssociation(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice:
		return t.Elem().Kind() == reflect.Struct
	}
	return false
}

func (u *UnitOfWork) add(entity any) {
	if !contains(u.added, entity) {
		u.added = append(u.added, entity)
	}
}

// remove cancels a pending add of the same entity instead of issuing a delete.
func (u *UnitOfWork) remove(entity any) {
	if i := indexOf(u.added, entity); i >= 0 {
		u.added = append(u.added[:i], u.added[i+1:]...)
		return
	}
	if !contains(u.deleted, entity) {
		u.deleted = append(u.deleted, entity)
	}
}

func (u *UnitOfWork) HasChanges() bool {
	if len(u.added) > 0 || len(u.deleted) > 0 {
		return true
	}
	for _, t := range u.tracked {
		if len(t.changedFields()) > 0 {
			return true
		}
	}
	return false
}

// SaveChanges writes inserts, then the changed columns of tracked entities,
// then deletes, in one transaction. Tracked entities nobody modified are not
// written. Pending state is cleared only when the commit succeeds.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	if !u.HasChanges() {
		return nil
	}
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range u.added {
			if err := tx.Omit(clause.Associations).Create(e).Error; err != nil {
				return fmt.Errorf("insert %T: %w", e, err)
			}
		}
		for _, t := range u.tracked {
			if contains(u.deleted, t.entity) {
				continue
			}
			fields := t.changedFields()
			if len(fields) == 0 {
				continue
			}
			if err := tx.Model(t.entity).Select(fields).Omit(clause.Associations).Updates(t.entity).Error; err != nil {
				return fmt.Errorf("update %T: %w", t.entity, err)
			}
		}
		for _, e := range u.deleted {
			if err := tx.Delete(e).Error; err != nil {
				return fmt.Errorf("delete %T: %w", e, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	u.added, u.deleted, u.tracked = nil, nil, nil
	return nil
}

func indexOf(list []any, entity any) int {
	for i, e := range list {
		if e == entity {
			return i
		}
	}
	return -1
}

func contains(list []any, entity any) bool {
	return indexOf(list, entity) >= 0
}
