package ecs

// SetParent 将 child 挂到 parent 之下，若 child 已有父节点则先摘除
func (em *EntityManager) SetParent(child, parent EntityID) {
	if !em.Exists(child) || !em.Exists(parent) || child == parent {
		return
	}
	em.unlinkFromParent(child)
	em.parents[child] = parent
	em.children[parent] = append(em.children[parent], child)
}

// Parent 返回实体的父节点
func (em *EntityManager) Parent(child EntityID) (EntityID, bool) {
	p, ok := em.parents[child]
	return p, ok
}

// Children 返回实体的子节点列表（副本）
func (em *EntityManager) Children(parent EntityID) []EntityID {
	kids := em.children[parent]
	out := make([]EntityID, len(kids))
	copy(out, kids)
	return out
}

// DetachFromHierarchy 将实体从场景层级中摘除
//
// 实体与父节点断开，其子节点成为根节点。
func (em *EntityManager) DetachFromHierarchy(id EntityID) {
	em.unlinkFromParent(id)
	for _, child := range em.children[id] {
		delete(em.parents, child)
	}
	delete(em.children, id)
}

func (em *EntityManager) unlinkFromParent(child EntityID) {
	parent, ok := em.parents[child]
	if !ok {
		return
	}
	siblings := em.children[parent]
	for i, s := range siblings {
		if s == child {
			em.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(em.children[parent]) == 0 {
		delete(em.children, parent)
	}
	delete(em.parents, child)
}
