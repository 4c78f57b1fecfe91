// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g internal/api/router.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/piutang-pelanggan": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["piutang"],
                "summary": "List PiutangPelanggan",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/PiutangPelanggan"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["piutang"],
                "summary": "Create PiutangPelanggan",
                "parameters": [
                    {"description": "PiutangPelanggan", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PiutangPelanggan"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/PiutangPelanggan"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/piutang-pelanggan/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["piutang"],
                "summary": "Replace PiutangPelanggan",
                "parameters": [
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true},
                    {"description": "PiutangPelanggan", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PiutangPelanggan"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PiutangPelanggan"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["piutang"],
                "summary": "Delete PiutangPelanggan",
                "parameters": [
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/pembayaran-piutang": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["pembayaran"],
                "summary": "List PembayaranPiutang",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/PembayaranPiutang"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pembayaran"],
                "summary": "Create PembayaranPiutang",
                "parameters": [
                    {"description": "PembayaranPiutang", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PembayaranPiutang"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/PembayaranPiutang"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/pembayaran-piutang/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pembayaran"],
                "summary": "Replace PembayaranPiutang",
                "parameters": [
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true},
                    {"description": "PembayaranPiutang", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PembayaranPiutang"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PembayaranPiutang"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["pembayaran"],
                "summary": "Delete PembayaranPiutang",
                "parameters": [
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/proyek": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["proyek"],
                "summary": "List Proyek",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Proyek"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["proyek"],
                "summary": "Create Proyek",
                "parameters": [
                    {"description": "Proyek", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Proyek"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Proyek"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/proyek/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["proyek"],
                "summary": "Replace Proyek",
                "parameters": [
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true},
                    {"description": "Proyek", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Proyek"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Proyek"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["proyek"],
                "summary": "Delete Proyek",
                "parameters": [
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/biaya-proyek": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["biaya"],
                "summary": "List BiayaProyek",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/BiayaProyek"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["biaya"],
                "summary": "Create BiayaProyek",
                "parameters": [
                    {"description": "BiayaProyek", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BiayaProyek"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/BiayaProyek"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/biaya-proyek/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["biaya"],
                "summary": "Replace BiayaProyek",
                "parameters": [
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true},
                    {"description": "BiayaProyek", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BiayaProyek"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BiayaProyek"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["biaya"],
                "summary": "Delete BiayaProyek",
                "parameters": [
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "registerRequest": {
            "type": "object",
            "required": ["nama_pengguna", "kata_sandi", "peran_pengguna"],
            "properties": {
                "nama_pengguna": {"type": "string"},
                "kata_sandi": {"type": "string"},
                "peran_pengguna": {"type": "string", "enum": ["petugas_keuangan", "admin"]}
            }
        },
        "loginRequest": {
            "type": "object",
            "required": ["nama_pengguna", "kata_sandi"],
            "properties": {
                "nama_pengguna": {"type": "string"},
                "kata_sandi": {"type": "string"}
            }
        },
        "loginResponse": {"type": "object", "properties": {"accessToken": {"type": "string"}}},
        "User": {
            "type": "object",
            "properties": {
                "id_pengguna": {"type": "string"},
                "nama_pengguna": {"type": "string"},
                "peran_pengguna": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "PiutangPelanggan": {
            "type": "object",
            "required": ["nama_pelanggan", "jumlah_piutang", "tanggal_jatuh_tempo"],
            "properties": {
                "id_piutang_pelanggan": {"type": "string", "readOnly": true},
                "nama_pelanggan": {"type": "string"},
                "nomor_faktur": {"type": "string"},
                "jumlah_piutang": {"type": "number"},
                "tanggal_piutang": {"type": "string", "format": "date-time"},
                "tanggal_jatuh_tempo": {"type": "string", "format": "date-time"},
                "status_piutang": {"type": "string", "enum": ["belum_lunas", "lunas"]},
                "keterangan": {"type": "string"}
            }
        },
        "PembayaranPiutang": {
            "type": "object",
            "required": ["id_piutang_pelanggan", "jumlah_pembayaran", "tanggal_pembayaran"],
            "properties": {
                "id_pembayaran_piutang": {"type": "string", "readOnly": true},
                "id_piutang_pelanggan": {"type": "string"},
                "jumlah_pembayaran": {"type": "number"},
                "tanggal_pembayaran": {"type": "string", "format": "date-time"},
                "metode_pembayaran": {"type": "string"},
                "keterangan": {"type": "string"}
            }
        },
        "Proyek": {
            "type": "object",
            "required": ["nama_proyek"],
            "properties": {
                "id_proyek": {"type": "string", "readOnly": true},
                "nama_proyek": {"type": "string"},
                "nama_klien": {"type": "string"},
                "nilai_kontrak": {"type": "number"},
                "tanggal_mulai": {"type": "string", "format": "date-time"},
                "tanggal_selesai": {"type": "string", "format": "date-time"},
                "status_proyek": {"type": "string", "enum": ["perencanaan", "berjalan", "selesai", "dibatalkan"]}
            }
        },
        "BiayaProyek": {
            "type": "object",
            "required": ["id_proyek", "jumlah_biaya", "tanggal_biaya"],
            "properties": {
                "id_biaya_proyek": {"type": "string", "readOnly": true},
                "id_proyek": {"type": "string"},
                "kategori_biaya": {"type": "string"},
                "deskripsi": {"type": "string"},
                "jumlah_biaya": {"type": "number"},
                "tanggal_biaya": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Finance API",
	Description:      "Receivables, payments, projects and project costs behind bearer-token authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
