// Package docs 注册Swagger文档，由 swag init -g cmd/api/main.go 重新生成
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
    "paths": {
        "/auth/registration": {
            "post": {
                "tags": ["认证"],
                "summary": "用户注册",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "参数错误"}, "409": {"description": "邮箱已存在"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["认证"],
                "summary": "用户登录",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "邮箱或密码错误"}}
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["认证"],
                "summary": "退出登录",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/cart": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["购物车"],
                "summary": "查看购物车",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["购物车"],
                "summary": "加入购物车",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.AddCartItemRequest"}}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "图书不存在"}}
            }
        },
        "/cart/cart-items/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["购物车"],
                "summary": "修改购物车明细数量",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCartItemRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "不属于当前用户"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["购物车"],
                "summary": "删除购物车明细",
                "parameters": [{"type": "integer", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["订单"],
                "summary": "订单列表",
                "parameters": [
                    {"type": "integer", "in": "query", "name": "page"},
                    {"type": "integer", "in": "query", "name": "page_size"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["订单"],
                "summary": "下单",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.PlaceOrderRequest"}}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "正在结算或购物车被并发修改"}}
            }
        },
        "/orders/{orderId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["订单"],
                "summary": "修改订单状态",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "orderId", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateOrderStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "无效的状态"}, "403": {"description": "需要管理员权限"}}
            }
        },
        "/orders/{orderId}/items": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["订单"],
                "summary": "订单明细列表",
                "parameters": [{"type": "integer", "in": "path", "name": "orderId", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "订单不存在"}}
            }
        },
        "/orders/{orderId}/items/{itemId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["订单"],
                "summary": "订单明细",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "orderId", "required": true},
                    {"type": "integer", "in": "path", "name": "itemId", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "订单或明细不存在"}}
            }
        }
    },
    "definitions": {
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "repeat_password", "first_name", "last_name"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "secret123"},
                "repeat_password": {"type": "string", "example": "secret123"},
                "first_name": {"type": "string", "example": "Alice"},
                "last_name": {"type": "string", "example": "Smith"},
                "shipping_address": {"type": "string", "example": "1 Main St"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.AddCartItemRequest": {
            "type": "object",
            "required": ["book_id", "quantity"],
            "properties": {
                "book_id": {"type": "integer"},
                "quantity": {"type": "integer"}
            }
        },
        "dto.UpdateCartItemRequest": {
            "type": "object",
            "required": ["quantity"],
            "properties": {"quantity": {"type": "integer"}}
        },
        "dto.PlaceOrderRequest": {
            "type": "object",
            "required": ["shipping_address"],
            "properties": {"shipping_address": {"type": "string"}}
        },
        "dto.UpdateOrderStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "example": "PAID"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bookstore API",
	Description:      "在线书店后端：购物车结算、订单状态与访问控制",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
