package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}

	// 泛型接口与反射接口读取到的是同一个组件
	typed, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || typed != retrieved {
		t.Error("generic GetComponent should return the same pointer")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	// 标记后立即失活，但组件仍可读取直到清理
	if em.IsAlive(id) {
		t.Error("entity should not be alive after DestroyEntity")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("components should remain until RemoveMarkedEntities")
	}
	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 0 {
		t.Errorf("marked entity should be excluded from queries, got %v", got)
	}

	em.RemoveMarkedEntities()
	if em.Count() != 0 {
		t.Errorf("expected 0 entities after cleanup, got %d", em.Count())
	}
}

func TestIsAlive(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	tests := []struct {
		name string
		id   EntityID
		want bool
	}{
		{"无效ID", InvalidEntity, false},
		{"存活实体", id, true},
		{"不存在的实体", id + 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := em.IsAlive(tt.id); got != tt.want {
				t.Errorf("IsAlive(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	em := NewEntityManager()
	first := em.CreateEntity()
	em.DestroyEntity(first)
	em.RemoveMarkedEntities()

	second := em.CreateEntity()
	if second == first {
		t.Fatalf("ID %d reused after destroy", first)
	}
	if em.IsAlive(first) {
		t.Error("stale handle must not resolve to a live entity")
	}
}

func TestGetEntitiesWithSortedAndFiltered(t *testing.T) {
	em := NewEntityManager()
	var withBoth []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
			withBoth = append(withBoth, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if !reflect.DeepEqual(got, withBoth) {
		t.Errorf("GetEntitiesWith2 = %v, want %v", got, withBoth)
	}

	all := GetEntitiesWith1[*testPositionComponent](em)
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("results not sorted: %v", all)
		}
	}
}

func TestRemoveComponentGeneric(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})
	AddComponent(em, id, &testVelocityComponent{})

	RemoveComponent[*testVelocityComponent](em, id)

	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("velocity component should be removed")
	}
	if got := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testPositionComponent](em); len(got) != 0 {
		t.Errorf("expected no match, got %v", got)
	}
}
