package sand

// Material identifies the substance a cell holds. The zero value is Empty;
// declaration order is the order the palette and the material selector use.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Smoke
	Oil
	Wall
	Wood
	Fire
	Flame

	materialCount
)

// Class is the movement category a material belongs to. It normally follows
// from the material and is overridden only while oil or wood burns.
type Class uint8

const (
	ClassEmpty Class = iota
	ClassStatic
	ClassSolid
	ClassLiquid
	ClassGas
)

// Vec2 is the 2-component velocity carried on every particle. No movement
// rule consumes it; it is preserved across swaps and ignition.
type Vec2 struct {
	X float64
	Y float64
}

// Particle is the full per-cell state record.
type Particle struct {
	Material Material
	Class    Class
	LifeTime float64
	Velocity Vec2
	ColorIdx uint8
}

type materialDef struct {
	name     string
	class    Class
	lifeTime float64
	colorIdx uint8
}

// Materials with finite life start with a budget of 1; everything else pins
// the budget at 0 and ignores it.
var materialDefs = [materialCount]materialDef{
	Empty: {name: "empty", class: ClassEmpty},
	Sand:  {name: "sand", class: ClassSolid, colorIdx: uint8(Sand)},
	Water: {name: "water", class: ClassLiquid, colorIdx: uint8(Water)},
	Smoke: {name: "smoke", class: ClassGas, lifeTime: 1, colorIdx: uint8(Smoke)},
	Oil:   {name: "oil", class: ClassLiquid, colorIdx: uint8(Oil)},
	Wall:  {name: "wall", class: ClassStatic, colorIdx: uint8(Wall)},
	Wood:  {name: "wood", class: ClassStatic, colorIdx: uint8(Wood)},
	Fire:  {name: "fire", class: ClassSolid, lifeTime: 1, colorIdx: uint8(Fire)},
	Flame: {name: "flame", class: ClassGas, lifeTime: 1, colorIdx: uint8(Flame)},
}

// String returns the lowercase material name.
func (m Material) String() string {
	if m >= materialCount {
		m = Empty
	}
	return materialDefs[m].name
}

// DefaultParticle constructs the registry default for the given material.
// Unknown values fall back to the Empty defaults.
func DefaultParticle(m Material) Particle {
	if m >= materialCount {
		m = Empty
	}
	def := materialDefs[m]
	return Particle{
		Material: m,
		Class:    def.class,
		LifeTime: def.lifeTime,
		ColorIdx: def.colorIdx,
	}
}

// MaterialFromName resolves a lowercase material name, for config files.
func MaterialFromName(name string) (Material, bool) {
	for m := Material(0); m < materialCount; m++ {
		if materialDefs[m].name == name {
			return m, true
		}
	}
	return Empty, false
}

// NextMaterial cycles forward through the paintable (non-Empty) materials
// in declaration order, wrapping from the last back to the first.
func NextMaterial(m Material) Material {
	if m < Sand || m >= materialCount-1 {
		return Sand
	}
	return m + 1
}

// PrevMaterial cycles backward through the paintable materials, wrapping
// from the first to the last.
func PrevMaterial(m Material) Material {
	if m <= Sand || m >= materialCount {
		return materialCount - 1
	}
	return m - 1
}
