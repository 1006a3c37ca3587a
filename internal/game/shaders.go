package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Line vertex shader: world-space positions through a single view-projection.
const lineVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;

uniform mat4 uViewProj;

out float vDepth;

void main() {
    gl_Position = uViewProj * vec4(aPos, 1.0);
    vDepth = gl_Position.w;
}
` + "\x00"

// Line fragment shader: flat color with distance fade into the sky color.
const lineFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uFogColor;
uniform float uFogFar;

in float vDepth;
out vec4 FragColor;

void main() {
    float fog = clamp(vDepth / uFogFar, 0.0, 1.0);
    fog = fog * fog;
    FragColor = vec4(mix(uColor, uFogColor, fog), 1.0);
}
` + "\x00"

// Mesh vertex shader: model transform plus view-projection, normal carried
// through the model rotation for lighting.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vNormal;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    gl_Position = uViewProj * world;
    vNormal = mat3(uModel) * aNormal;
}
` + "\x00"

// Mesh fragment shader: single directional light, lambert with an ambient floor.
const meshFragSrc = `#version 410 core

uniform vec3 uColor;
uniform vec3 uLightDir; // normalized, pointing from the light

in vec3 vNormal;
out vec4 FragColor;

void main() {
    float diff = max(dot(normalize(vNormal), -uLightDir), 0.0);
    FragColor = vec4(uColor * (0.35 + 0.65 * diff), 1.0);
}
` + "\x00"

// infoLog reads a shader or program info log of the given length.
func infoLog(id uint32, logLen int32, get func(uint32, int32, *int32, *uint8)) string {
	buf := strings.Repeat("\x00", int(logLen+1))
	get(id, logLen, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		msg := infoLog(shader, logLen, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		msg := infoLog(program, logLen, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return program, nil
}
