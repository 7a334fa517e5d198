package rays

// shaderSrc is the Kage program for the light-ray background. Two slightly
// detuned ray passes are layered so the beams drift against each other.
const shaderSrc = `
//kage:unit pixels

package main

var Resolution vec2
var RaysPos vec2
var RaysDir vec2
var RaysColor vec3
var Speed float
var Spread float
var RayLength float
var Pulsating float
var FadeDistance float
var Saturation float
var FollowMouse float
var MouseInfluence float
var NoiseAmount float
var Distortion float
var Time float
var Mouse vec2
var Offset vec2

func noise(st vec2) float {
	return fract(sin(dot(st, vec2(12.9898, 78.233))) * 43758.5453123)
}

func rayStrength(raySource, refDir, coord vec2, seedA, seedB, speed float) float {
	toCoord := coord - raySource
	dist := length(toCoord)
	dirNorm := toCoord / dist

	cosAngle := dot(dirNorm, refDir)
	distortedAngle := cosAngle + Distortion*sin(Time*2.0+dist*0.01)*0.2

	spreadFactor := pow(max(distortedAngle, 0.0), 1.0/max(Spread, 0.001))

	maxDist := Resolution.x * RayLength
	lengthFalloff := clamp((maxDist-dist)/maxDist, 0.0, 1.0)
	fadeFalloff := clamp((Resolution.x*FadeDistance-dist)/(Resolution.x*FadeDistance), 0.5, 1.0)

	pulse := 1.0
	if Pulsating > 0.5 {
		pulse = 0.8 + 0.2*sin(Time*speed*3.0)
	}

	base := clamp(
		0.45+0.15*sin(distortedAngle*seedA+Time*speed)+
			0.3+0.2*cos(-distortedAngle*seedB+Time*speed),
		0.0, 1.0)

	return base * lengthFalloff * fadeFalloff * spreadFactor * pulse
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	local := dstPos.xy - Offset
	coord := vec2(local.x, Resolution.y-local.y)

	dir := RaysDir
	if FollowMouse > 0.5 {
		mouse := vec2(Mouse.x*Resolution.x, (1.0-Mouse.y)*Resolution.y)
		toMouse := mouse - RaysPos
		l := length(toMouse)
		if l > 0.001 {
			dir = normalize(mix(RaysDir, toMouse/l, MouseInfluence))
		}
	}

	s1 := rayStrength(RaysPos, dir, coord, 36.2214, 21.11349, 1.5*Speed)
	s2 := rayStrength(RaysPos, dir, coord, 22.3991, 18.0234, 1.1*Speed)
	strength := s1*0.5 + s2*0.4

	if NoiseAmount > 0.0 {
		n := noise(coord * 0.01)
		strength = strength*(1.0-NoiseAmount) + strength*n*NoiseAmount
	}

	// dim toward the bottom of the section
	brightness := 1.0 - coord.y/Resolution.y
	col := vec3(strength) * RaysColor
	col.x = col.x * (0.1 + brightness*0.8)
	col.y = col.y * (0.3 + brightness*0.6)
	col.z = col.z * (0.5 + brightness*0.5)

	if Saturation != 1.0 {
		gray := dot(col, vec3(0.299, 0.587, 0.114))
		col = mix(vec3(gray), col, Saturation)
	}

	return vec4(col, strength)
}
`
